// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package filter

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/sensor-hub/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE wildcards of s so it matches literally in a
// pattern declared with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// OwnedBy restricts sensors to the given owner.
func OwnedBy(ownerID int64) sq.Eq {
	return sq.Eq{"owner_id": ownerID}
}

// SensorSearch matches sensors whose name or type contains search,
// ignoring case. It returns nil for an empty search term.
func SensorSearch(search string) sq.Sqlizer {
	if search == "" {
		return nil
	}

	pattern := "%" + EscapeLike(strings.ToLower(search)) + "%"
	return sq.Or{
		sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(type) LIKE ? ESCAPE '\'`, pattern),
	}
}

// ReadingWindow applies the inclusive bounds of q to the recorded_at column.
// It returns nil when q has no bounds.
func ReadingWindow(q models.ReadingQuery) sq.Sqlizer {
	var and sq.And
	if q.From != nil {
		and = append(and, sq.GtOrEq{"recorded_at": q.From.UTC()})
	}
	if q.To != nil {
		and = append(and, sq.LtOrEq{"recorded_at": q.To.UTC()})
	}

	if len(and) == 0 {
		return nil
	}
	return and
}

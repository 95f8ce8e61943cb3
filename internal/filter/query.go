// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package filter

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

// PageSize is the fixed number of items per page of a paginated listing.
const PageSize = 10

// Query string keys understood by the parsers.
const (
	ParamSearch        = "q"
	ParamPage          = "page"
	ParamTimestampFrom = "timestamp_from"
	ParamTimestampTo   = "timestamp_to"
)

// ErrInvalidPage is returned for a page number that is not a positive integer.
var ErrInvalidPage = errors.New("page must be a positive integer")

// ParseSensorQuery reads the search term and page number. A missing page
// means the first one.
func ParseSensorQuery(values url.Values) (models.SensorQuery, error) {
	q := models.SensorQuery{
		Search: strings.TrimSpace(values.Get(ParamSearch)),
		Page:   1,
	}

	if raw := values.Get(ParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return models.SensorQuery{}, ErrInvalidPage
		}
		q.Page = page
	}

	return q, nil
}

// ParseReadingQuery reads the optional inclusive time window. A bound that
// does not parse as a timestamp is ignored rather than rejected.
func ParseReadingQuery(ctx context.Context, values url.Values) models.ReadingQuery {
	var q models.ReadingQuery
	q.From = parseBound(ctx, values, ParamTimestampFrom)
	q.To = parseBound(ctx, values, ParamTimestampTo)

	return q
}

func parseBound(ctx context.Context, values url.Values, key string) *time.Time {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}

	t, ok := ParseTimestamp(raw)
	if !ok {
		logger.FromContext(ctx).Debug().
			Str("func", "filter.parseBound").
			Str("param", key).
			Str("value", raw).
			Msg("ignoring malformed timestamp bound")
		return nil
	}

	return &t
}

// Offset returns the number of rows preceding the given 1-based page.
func Offset(page int) uint64 {
	if page < 1 {
		return 0
	}
	return uint64(page-1) * PageSize
}

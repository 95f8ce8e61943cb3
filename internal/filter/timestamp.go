// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package filter

import (
	"strings"
	"time"
)

// Layouts tried in order. Fractional seconds are accepted after the seconds
// field even though the layouts do not spell them out.
var (
	offsetLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02T15:04Z07:00",
		"2006-01-02 15:04Z07:00",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
)

// ParseTimestamp parses an ISO-8601 timestamp as sent by clients.
//
// Both "T" and space separators are accepted, with or without fractional
// seconds. A value without offset is taken as UTC. A bare date is midnight
// UTC of that day, so "timestamp_to=2024-03-01" excludes the rest of March 1st;
// pass the next day to include it. When the value does not
// parse as is, the last space is read as a "+" that query-string decoding
// turned into a space ("10:00:00 02:00" -> "10:00:00+02:00").
//
// The result is always in UTC. ok is false for anything unparsable.
func ParseTimestamp(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, ok = parseTimestamp(raw); ok {
		return t, true
	}

	if i := strings.LastIndexByte(raw, ' '); i > 0 {
		return parseTimestamp(raw[:i] + "+" + raw[i+1:])
	}

	return time.Time{}, false
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

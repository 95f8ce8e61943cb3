// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package filter

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sensor-hub/models"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "temp", EscapeLike("temp"))
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, EscapeLike(`c:\dir`))
}

func TestOwnedBy(t *testing.T) {
	sql, args, err := OwnedBy(7).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "owner_id = ?", sql)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestSensorSearch(t *testing.T) {
	assert.Nil(t, SensorSearch(""))

	sql, args, err := SensorSearch("Te_mp%").ToSql()
	require.NoError(t, err)
	assert.Equal(t, `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(type) LIKE ? ESCAPE '\')`, sql)
	assert.Equal(t, []any{`%te\_mp\%%`, `%te\_mp\%%`}, args)
}

func TestSensorSearch_DollarPlaceholders(t *testing.T) {
	sql, _, err := sq.Select("id").From("sensors").
		Where(OwnedBy(1)).
		Where(SensorSearch("temp")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT id FROM sensors WHERE owner_id = $1 AND (LOWER(name) LIKE $2 ESCAPE '\' OR LOWER(type) LIKE $3 ESCAPE '\')`,
		sql)
}

func TestReadingWindow(t *testing.T) {
	from := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("EET", 2*3600))
	to := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)

	assert.Nil(t, ReadingWindow(models.ReadingQuery{}))

	sql, args, err := ReadingWindow(models.ReadingQuery{From: &from, To: &to}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(recorded_at >= ? AND recorded_at <= ?)", sql)
	require.Len(t, args, 2)
	assert.Equal(t, time.UTC, args[0].(time.Time).Location())
	assert.True(t, from.Equal(args[0].(time.Time)))

	sql, args, err = ReadingWindow(models.ReadingQuery{To: &to}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(recorded_at <= ?)", sql)
	assert.Len(t, args, 1)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sensor-hub/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(pgBuilder, models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (username,password_hash) VALUES ($1,$2) RETURNING user_id, username, password_hash, created_at", query)
	assert.Equal(t, []any{"alice", "hash"}, args)
}

func Test_buildGetOrCreateTokenQuery(t *testing.T) {
	query, args, err := buildGetOrCreateTokenQuery(sqliteBuilder, 7, "abc")
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO tokens (token,user_id) VALUES (?,?) ON CONFLICT (user_id) DO UPDATE SET user_id = excluded.user_id RETURNING token, user_id, created_at",
		query)
	assert.Equal(t, []any{"abc", int64(7)}, args)
}

func Test_buildSelectPrincipalByTokenQuery(t *testing.T) {
	query, args, err := buildSelectPrincipalByTokenQuery(pgBuilder, "abc")
	require.NoError(t, err)

	assert.Equal(t, "SELECT u.user_id, u.username FROM tokens t JOIN users u ON u.user_id = t.user_id WHERE t.token = $1", query)
	assert.Equal(t, []any{"abc"}, args)
}

func Test_buildSelectSensorQuery_ScopedByOwner(t *testing.T) {
	query, args, err := buildSelectSensorQuery(pgBuilder, 3, 9)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, type, owner_id, created_at FROM sensors WHERE id = $1 AND owner_id = $2", query)
	assert.Equal(t, []any{int64(9), int64(3)}, args)
}

func Test_buildListSensorsQuery(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "without search",
			wantQuery: "SELECT id, name, type, owner_id, created_at FROM sensors WHERE owner_id = $1 ORDER BY id ASC LIMIT 10 OFFSET 20",
			wantArgs:  []any{int64(1)},
		},
		{
			name:      "with search",
			search:    "Temp",
			wantQuery: `SELECT id, name, type, owner_id, created_at FROM sensors WHERE owner_id = $1 AND (LOWER(name) LIKE $2 ESCAPE '\' OR LOWER(type) LIKE $3 ESCAPE '\') ORDER BY id ASC LIMIT 10 OFFSET 20`,
			wantArgs:  []any{int64(1), "%temp%", "%temp%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListSensorsQuery(pgBuilder, 1, tt.search, 10, 20)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildCountSensorsQuery(t *testing.T) {
	query, args, err := buildCountSensorsQuery(pgBuilder, 1, "x")
	require.NoError(t, err)

	assert.Equal(t, `SELECT COUNT(*) FROM sensors WHERE owner_id = $1 AND (LOWER(name) LIKE $2 ESCAPE '\' OR LOWER(type) LIKE $3 ESCAPE '\')`, query)
	assert.Len(t, args, 3)
}

func Test_buildInsertReadingQuery(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("EET", 2*3600))
	humidity := 40.5

	t.Run("with humidity", func(t *testing.T) {
		query, args, err := buildInsertReadingQuery(pgBuilder, models.Reading{SensorID: 2, Temperature: 21.5, Humidity: &humidity, Timestamp: ts})
		require.NoError(t, err)

		assert.Equal(t, "INSERT INTO readings (sensor_id,temperature,humidity,recorded_at) VALUES ($1,$2,$3,$4) RETURNING id, sensor_id, temperature, humidity, recorded_at", query)
		require.Len(t, args, 4)
		assert.Equal(t, 40.5, args[2])
		assert.Equal(t, ts.UTC(), args[3])
	})

	t.Run("without humidity", func(t *testing.T) {
		_, args, err := buildInsertReadingQuery(pgBuilder, models.Reading{SensorID: 2, Temperature: 21.5, Timestamp: ts})
		require.NoError(t, err)
		assert.Nil(t, args[2])
	})
}

func Test_buildListReadingsQuery(t *testing.T) {
	from := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	query, args, err := buildListReadingsQuery(pgBuilder, 5, models.ReadingQuery{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, sensor_id, temperature, humidity, recorded_at FROM readings WHERE sensor_id = $1 AND (recorded_at >= $2 AND recorded_at <= $3) ORDER BY recorded_at DESC, id DESC", query)
	assert.Equal(t, []any{int64(5), from, to}, args)

	query, args, err = buildListReadingsQuery(pgBuilder, 5, models.ReadingQuery{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, sensor_id, temperature, humidity, recorded_at FROM readings WHERE sensor_id = $1 ORDER BY recorded_at DESC, id DESC", query)
	assert.Equal(t, []any{int64(5)}, args)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/sensor-hub/internal/filter"
	"github.com/MKhiriev/sensor-hub/models"
)

const (
	usersTable    = "users"
	tokensTable   = "tokens"
	sensorsTable  = "sensors"
	readingsTable = "readings"

	userColumns    = "user_id, username, password_hash, created_at"
	tokenColumns   = "token, user_id, created_at"
	sensorColumns  = "id, name, type, owner_id, created_at"
	readingColumns = "id, sensor_id, temperature, humidity, recorded_at"
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuild(b.Insert(usersTable).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING " + userColumns).
		ToSql())
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return wrapBuild(b.Select(userColumns).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql())
}

// buildGetOrCreateTokenQuery inserts the candidate token or, when the user
// already has one, touches the existing row so RETURNING yields it.
func buildGetOrCreateTokenQuery(b sq.StatementBuilderType, userID int64, candidateKey string) (string, []any, error) {
	return wrapBuild(b.Insert(tokensTable).
		Columns("token", "user_id").
		Values(candidateKey, userID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET user_id = excluded.user_id RETURNING " + tokenColumns).
		ToSql())
}

func buildSelectPrincipalByTokenQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return wrapBuild(b.Select("u.user_id", "u.username").
		From(tokensTable + " t").
		Join(usersTable + " u ON u.user_id = t.user_id").
		Where(sq.Eq{"t.token": key}).
		ToSql())
}

func buildInsertSensorQuery(b sq.StatementBuilderType, sensor models.Sensor) (string, []any, error) {
	return wrapBuild(b.Insert(sensorsTable).
		Columns("name", "type", "owner_id").
		Values(sensor.Name, sensor.Type, sensor.OwnerID).
		Suffix("RETURNING " + sensorColumns).
		ToSql())
}

func buildSelectSensorQuery(b sq.StatementBuilderType, ownerID, sensorID int64) (string, []any, error) {
	return wrapBuild(b.Select(sensorColumns).
		From(sensorsTable).
		Where(sq.Eq{"id": sensorID}).
		Where(filter.OwnedBy(ownerID)).
		ToSql())
}

func buildListSensorsQuery(b sq.StatementBuilderType, ownerID int64, search string, limit, offset uint64) (string, []any, error) {
	query := b.Select(sensorColumns).
		From(sensorsTable).
		Where(filter.OwnedBy(ownerID))

	if pred := filter.SensorSearch(search); pred != nil {
		query = query.Where(pred)
	}

	return wrapBuild(query.
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql())
}

func buildCountSensorsQuery(b sq.StatementBuilderType, ownerID int64, search string) (string, []any, error) {
	query := b.Select("COUNT(*)").
		From(sensorsTable).
		Where(filter.OwnedBy(ownerID))

	if pred := filter.SensorSearch(search); pred != nil {
		query = query.Where(pred)
	}

	return wrapBuild(query.ToSql())
}

func buildInsertReadingQuery(b sq.StatementBuilderType, reading models.Reading) (string, []any, error) {
	var humidity any
	if reading.Humidity != nil {
		humidity = *reading.Humidity
	}

	return wrapBuild(b.Insert(readingsTable).
		Columns("sensor_id", "temperature", "humidity", "recorded_at").
		Values(reading.SensorID, reading.Temperature, humidity, reading.Timestamp.UTC()).
		Suffix("RETURNING " + readingColumns).
		ToSql())
}

func buildListReadingsQuery(b sq.StatementBuilderType, sensorID int64, q models.ReadingQuery) (string, []any, error) {
	query := b.Select(readingColumns).
		From(readingsTable).
		Where(sq.Eq{"sensor_id": sensorID})

	if pred := filter.ReadingWindow(q); pred != nil {
		query = query.Where(pred)
	}

	return wrapBuild(query.
		OrderBy("recorded_at DESC", "id DESC").
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

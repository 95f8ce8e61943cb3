// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/sensor-hub/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns [ErrUsernameTaken] when the username is in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrUserNotFound] when nobody has username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TokenRepository persists the single bearer token of each user.
type TokenRepository interface {
	// GetOrCreateToken returns the existing token of userID, or stores
	// candidateKey as its token when it has none. The decision is made by a
	// single statement, so concurrent callers always agree on one key.
	GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.Token, error)
	// FindPrincipalByToken resolves a token key to its owner.
	// Returns [ErrTokenNotFound] for an unknown key.
	FindPrincipalByToken(ctx context.Context, key string) (models.Principal, error)
}

// SensorRepository persists sensors. Every method is scoped by owner.
type SensorRepository interface {
	CreateSensor(ctx context.Context, sensor models.Sensor) (models.Sensor, error)
	// FindSensor returns [ErrSensorNotFound] when the sensor does not exist
	// or belongs to another owner.
	FindSensor(ctx context.Context, ownerID, sensorID int64) (models.Sensor, error)
	// ListSensors returns at most limit sensors ordered by id, skipping
	// offset matches. An empty search matches every sensor of the owner.
	ListSensors(ctx context.Context, ownerID int64, search string, limit, offset uint64) ([]models.Sensor, error)
	CountSensors(ctx context.Context, ownerID int64, search string) (int64, error)
}

// ReadingRepository persists readings. Callers resolve sensor ownership
// before using it.
type ReadingRepository interface {
	// CreateReading returns [ErrReadingAlreadyExists] when the sensor already
	// has a reading at the same timestamp.
	CreateReading(ctx context.Context, reading models.Reading) (models.Reading, error)
	// ListReadings returns readings within the inclusive bounds of query,
	// newest first.
	ListReadings(ctx context.Context, sensorID int64, query models.ReadingQuery) ([]models.Reading, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides how a database error is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sensor-hub/models"
)

// AuthService registers users and resolves their bearer tokens.
type AuthService interface {
	// Register creates a user and returns its token.
	Register(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// Login returns the token of the user, issuing one if it has none.
	// Repeated logins return the same token.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// Authenticate resolves a token key to the principal it belongs to.
	Authenticate(ctx context.Context, key string) (models.Principal, error)
}

// SensorService manages the sensors of a principal.
type SensorService interface {
	List(ctx context.Context, principal models.Principal, query models.SensorQuery) (models.Page[models.Sensor], error)
	Create(ctx context.Context, principal models.Principal, input models.SensorInput) (models.Sensor, error)
}

// ReadingService manages the readings of sensors owned by a principal.
// A sensor of another owner is reported as missing.
type ReadingService interface {
	List(ctx context.Context, principal models.Principal, sensorID int64, query models.ReadingQuery) ([]models.Reading, error)
	Create(ctx context.Context, principal models.Principal, sensorID int64, input models.ReadingInput) (models.Reading, error)
}

// HealthService reports the state of the running instance.
type HealthService interface {
	Check(ctx context.Context) error
	Version() string
}

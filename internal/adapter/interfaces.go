// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains the outbound client of the sensor-hub HTTP API.
package adapter

import (
	"context"

	"github.com/MKhiriev/sensor-hub/models"
)

// ServerAdapter is the client-side view of the sensor-hub API.
//
// Register and Login store the returned token; every other call except
// Health sends it as a bearer token. Non-2xx responses are returned as errors
// wrapping one of the package sentinels (for example [ErrConflict]).
type ServerAdapter interface {
	// SetToken replaces the bearer token used for authenticated calls.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string

	Register(ctx context.Context, credentials models.Credentials) (models.Token, error)

	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	CreateSensor(ctx context.Context, input models.SensorInput) (models.Sensor, error)

	// ListSensors returns one page of the caller's sensors. An empty search
	// matches everything; page 0 is treated as the first page.
	ListSensors(ctx context.Context, search string, page int) (models.Page[models.Sensor], error)

	CreateReading(ctx context.Context, sensorID int64, input models.ReadingInput) (models.Reading, error)

	ListReadings(ctx context.Context, sensorID int64, query models.ReadingQuery) ([]models.Reading, error)

	// Health reports the server status. It does not need a token.
	Health(ctx context.Context) (models.HealthResponse, error)
}

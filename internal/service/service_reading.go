// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/store"
	"github.com/MKhiriev/sensor-hub/internal/validators"
	"github.com/MKhiriev/sensor-hub/models"
)

type readingService struct {
	sensorRepository  store.SensorRepository
	readingRepository store.ReadingRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewReadingService(
	sensorRepository store.SensorRepository,
	readingRepository store.ReadingRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ReadingService {
	return &readingService{
		sensorRepository:  sensorRepository,
		readingRepository: readingRepository,
		validator:         validator,
		logger:            logger,
	}
}

// List returns the readings of the principal's sensor within the inclusive
// bounds of query, newest first.
func (s *readingService) List(ctx context.Context, principal models.Principal, sensorID int64, query models.ReadingQuery) ([]models.Reading, error) {
	sensor, err := s.ownedSensor(ctx, principal, sensorID)
	if err != nil {
		return nil, err
	}

	readings, err := s.readingRepository.ListReadings(ctx, sensor.ID, query)
	if err != nil {
		return nil, fmt.Errorf("listing readings failed: %w", err)
	}
	if readings == nil {
		readings = []models.Reading{}
	}

	return readings, nil
}

// Create stores a reading of the principal's sensor. The timestamp is kept
// in UTC.
func (s *readingService) Create(ctx context.Context, principal models.Principal, sensorID int64, input models.ReadingInput) (models.Reading, error) {
	log := logger.FromContext(ctx)

	sensor, err := s.ownedSensor(ctx, principal, sensorID)
	if err != nil {
		return models.Reading{}, err
	}

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Int64("sensor_id", sensor.ID).Msg("invalid reading data")
		return models.Reading{}, &ValidationError{Err: err}
	}

	reading, err := s.readingRepository.CreateReading(ctx, models.Reading{
		SensorID:    sensor.ID,
		Temperature: *input.Temperature,
		Humidity:    input.Humidity,
		Timestamp:   input.Timestamp.UTC(),
	})
	if err != nil {
		log.Err(err).Int64("sensor_id", sensor.ID).Msg("reading creation failed")
		return models.Reading{}, fmt.Errorf("reading creation failed: %w", err)
	}

	return reading, nil
}

// ownedSensor resolves sensorID within the principal's sensors.
func (s *readingService) ownedSensor(ctx context.Context, principal models.Principal, sensorID int64) (models.Sensor, error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Sensor{}, err
	}
	if sensorID <= 0 {
		return models.Sensor{}, store.ErrSensorNotFound
	}

	sensor, err := s.sensorRepository.FindSensor(ctx, principal.UserID, sensorID)
	if err != nil {
		return models.Sensor{}, fmt.Errorf("sensor lookup failed: %w", err)
	}

	return sensor, nil
}

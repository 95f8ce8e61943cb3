// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/sensor-hub/internal/filter"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/store"
	"github.com/MKhiriev/sensor-hub/internal/validators"
	"github.com/MKhiriev/sensor-hub/models"
)

type sensorService struct {
	sensorRepository store.SensorRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewSensorService(sensorRepository store.SensorRepository, validator validators.Validator, logger *logger.Logger) SensorService {
	return &sensorService{
		sensorRepository: sensorRepository,
		validator:        validator,
		logger:           logger,
	}
}

// List returns one page of the principal's sensors matching query.Search,
// ordered by id. A page past the end has no items.
func (s *sensorService) List(ctx context.Context, principal models.Principal, query models.SensorQuery) (models.Page[models.Sensor], error) {
	if err := requirePrincipal(principal); err != nil {
		return models.Page[models.Sensor]{}, err
	}
	if query.Page < 1 {
		return models.Page[models.Sensor]{}, &ValidationError{Err: filter.ErrInvalidPage}
	}

	count, err := s.sensorRepository.CountSensors(ctx, principal.UserID, query.Search)
	if err != nil {
		return models.Page[models.Sensor]{}, fmt.Errorf("counting sensors failed: %w", err)
	}

	sensors, err := s.sensorRepository.ListSensors(ctx, principal.UserID, query.Search, filter.PageSize, filter.Offset(query.Page))
	if err != nil {
		return models.Page[models.Sensor]{}, fmt.Errorf("listing sensors failed: %w", err)
	}
	if sensors == nil {
		sensors = []models.Sensor{}
	}

	return models.Page[models.Sensor]{
		Items:    sensors,
		Count:    count,
		Page:     query.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Create registers a sensor owned by the principal.
func (s *sensorService) Create(ctx context.Context, principal models.Principal, input models.SensorInput) (models.Sensor, error) {
	log := logger.FromContext(ctx)

	if err := requirePrincipal(principal); err != nil {
		return models.Sensor{}, err
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Msg("invalid sensor data")
		return models.Sensor{}, &ValidationError{Err: err}
	}

	sensor, err := s.sensorRepository.CreateSensor(ctx, models.Sensor{
		Name:    strings.TrimSpace(input.Name),
		Type:    strings.TrimSpace(input.Type),
		OwnerID: principal.UserID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", principal.UserID).Msg("sensor creation failed")
		return models.Sensor{}, fmt.Errorf("sensor creation failed: %w", err)
	}

	log.Info().Int64("sensor_id", sensor.ID).Int64("owner_id", sensor.OwnerID).Msg("sensor created")

	return sensor, nil
}

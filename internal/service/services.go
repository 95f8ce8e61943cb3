// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/store"
	"github.com/MKhiriev/sensor-hub/internal/validators"
	"github.com/MKhiriev/sensor-hub/models"
)

type Services struct {
	AuthService    AuthService
	SensorService  SensorService
	ReadingService ReadingService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewInputValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRepository, validator, cfg, logger),
		SensorService:  NewSensorService(storages.SensorRepository, validator, logger),
		ReadingService: NewReadingService(storages.SensorRepository, storages.ReadingRepository, validator, logger),
		HealthService:  NewHealthService(storages, cfg, logger),
	}
}

// requirePrincipal rejects calls made without an authenticated user.
func requirePrincipal(principal models.Principal) error {
	if principal.UserID <= 0 {
		return ErrInvalidToken
	}
	return nil
}

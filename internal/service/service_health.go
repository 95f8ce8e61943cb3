// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/store"
)

type healthService struct {
	checker    store.HealthChecker
	appVersion string

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		checker:    checker,
		appVersion: cfg.Version,
		logger:     logger,
	}
}

// Check pings the database.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}

func (s *healthService) Version() string {
	return s.appVersion
}

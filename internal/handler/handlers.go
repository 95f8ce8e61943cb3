// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the inbound transport handlers of the service.
package handler

import (
	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/handler/http"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handler of every transport that has an address
// configured.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

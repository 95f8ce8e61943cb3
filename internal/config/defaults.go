// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BcryptCost: bcrypt.DefaultCost,
			LogLevel:   "info",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverSQLite,
				DSN:          "file:sensor-hub.db",
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Device: Device{
			SensorName: "simulated",
			SensorType: "temperature",
			Readings:   10,
			Interval:   time.Second,
		},
	}
}

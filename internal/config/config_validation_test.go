// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero request timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative shutdown timeout", mutate: func(c *StructuredConfig) { c.Server.ShutdownTimeout = -1 }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero pool", mutate: func(c *StructuredConfig) { c.Storage.DB.MaxOpenConns = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "bcrypt cost too low", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 99 }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "chatty" }, wantErr: ErrInvalidAppConfigs},
		{name: "postgres driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = DriverPostgres }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		d := defaults()
		d.Device.Username = "probe"
		d.Device.Password = "secret1"
		return &ClientConfig{
			App:     d.App,
			Adapter: ClientAdapter{HTTPAddress: d.Adapter.HTTPAddress, RequestTimeout: d.Adapter.RequestTimeout},
			Device:  d.Device,
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no username", mutate: func(c *ClientConfig) { c.Device.Username = "" }, wantErr: ErrInvalidDeviceConfigs},
		{name: "no password", mutate: func(c *ClientConfig) { c.Device.Password = "" }, wantErr: ErrInvalidDeviceConfigs},
		{name: "no sensor name", mutate: func(c *ClientConfig) { c.Device.SensorName = "" }, wantErr: ErrInvalidDeviceConfigs},
		{name: "negative readings", mutate: func(c *ClientConfig) { c.Device.Readings = -1 }, wantErr: ErrInvalidDeviceConfigs},
		{name: "zero readings allowed", mutate: func(c *ClientConfig) { c.Device.Readings = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

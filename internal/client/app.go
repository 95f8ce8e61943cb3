// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/sensor-hub/internal/adapter"
	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

// App is a simulated device.
type App struct {
	adapter adapter.ServerAdapter
	device  config.Device

	// now and sample are replaced in tests.
	now    func() time.Time
	sample func(i int) (temperature, humidity float64)

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, device config.Device, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is required")
	}

	return &App{
		adapter: serverAdapter,
		device:  device,
		now:     time.Now,
		sample:  syntheticSample,
		logger:  logger,
	}, nil
}

// Run signs in, resolves the sensor, pushes device.Readings readings and
// logs the latest ones stored on the server.
func (a *App) Run(ctx context.Context) error {
	if err := a.signIn(ctx); err != nil {
		return err
	}

	sensor, err := a.ensureSensor(ctx)
	if err != nil {
		return err
	}

	pushed, err := a.push(ctx, sensor)
	if err != nil {
		return err
	}

	latest, err := a.adapter.ListReadings(ctx, sensor.ID, models.ReadingQuery{})
	if err != nil {
		return fmt.Errorf("list readings: %w", err)
	}

	a.logger.Info().
		Int64("sensor_id", sensor.ID).
		Int("pushed", pushed).
		Int("stored", len(latest)).
		Msg("simulation finished")

	for i, r := range latest {
		if i == 5 {
			break
		}
		a.logger.Info().
			Time("timestamp", r.Timestamp).
			Float64("temperature", r.Temperature).
			Msg("reading")
	}

	return nil
}

func (a *App) signIn(ctx context.Context) error {
	credentials := models.Credentials{Username: a.device.Username, Password: a.device.Password}

	_, err := a.adapter.Login(ctx, credentials)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("username", credentials.Username).Msg("login refused, registering")
	if _, err = a.adapter.Register(ctx, credentials); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return nil
}

// ensureSensor returns the device sensor, creating it when no sensor with
// the exact configured name exists.
func (a *App) ensureSensor(ctx context.Context) (models.Sensor, error) {
	for page := 1; ; page++ {
		result, err := a.adapter.ListSensors(ctx, a.device.SensorName, page)
		if err != nil {
			return models.Sensor{}, fmt.Errorf("list sensors: %w", err)
		}

		for _, s := range result.Items {
			if s.Name == a.device.SensorName {
				return s, nil
			}
		}

		if result.PageSize <= 0 || len(result.Items) == 0 || int64(page*result.PageSize) >= result.Count {
			break
		}
	}

	sensor, err := a.adapter.CreateSensor(ctx, models.SensorInput{Name: a.device.SensorName, Type: a.device.SensorType})
	if err != nil {
		return models.Sensor{}, fmt.Errorf("create sensor: %w", err)
	}
	a.logger.Info().Int64("sensor_id", sensor.ID).Str("name", sensor.Name).Msg("sensor created")

	return sensor, nil
}

func (a *App) push(ctx context.Context, sensor models.Sensor) (int, error) {
	var ticker *time.Ticker
	if a.device.Interval > 0 {
		ticker = time.NewTicker(a.device.Interval)
		defer ticker.Stop()
	}

	pushed := 0
	for i := 0; i < a.device.Readings; i++ {
		if i > 0 && ticker != nil {
			select {
			case <-ctx.Done():
				return pushed, ctx.Err()
			case <-ticker.C:
			}
		}

		temperature, humidity := a.sample(i)
		ts := a.now().UTC()

		_, err := a.adapter.CreateReading(ctx, sensor.ID, models.ReadingInput{
			Temperature: &temperature,
			Humidity:    &humidity,
			Timestamp:   &ts,
		})
		switch {
		case errors.Is(err, adapter.ErrConflict):
			a.logger.Warn().Time("timestamp", ts).Msg("reading already stored, skipped")
			continue
		case err != nil:
			return pushed, fmt.Errorf("push reading: %w", err)
		}
		pushed++
	}

	return pushed, nil
}

// syntheticSample produces a slow daily-like wave with some noise.
func syntheticSample(i int) (float64, float64) {
	phase := float64(i) / 12 * math.Pi
	temperature := 21 + 3*math.Sin(phase) + rand.Float64() - 0.5
	humidity := 45 + 10*math.Cos(phase) + rand.Float64()*2 - 1
	return math.Round(temperature*10) / 10, math.Round(humidity*10) / 10
}

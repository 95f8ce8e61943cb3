// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

type sensorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSensorRepository constructs a [SensorRepository] backed by db.
func NewSensorRepository(db *DB, logger *logger.Logger) SensorRepository {
	logger.Debug().Msg("creating sensor repository")
	return &sensorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sensorRepository) CreateSensor(ctx context.Context, sensor models.Sensor) (models.Sensor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSensorQuery(r.db.builder(), sensor)
	if err != nil {
		return models.Sensor{}, err
	}

	created, err := scanSensor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Sensor{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*sensorRepository.CreateSensor").Msg("error inserting sensor")
		return models.Sensor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *sensorRepository) FindSensor(ctx context.Context, ownerID, sensorID int64) (models.Sensor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSensorQuery(r.db.builder(), ownerID, sensorID)
	if err != nil {
		return models.Sensor{}, err
	}

	var sensor models.Sensor
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var err error
		sensor, err = scanSensor(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sensor{}, ErrSensorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sensorRepository.FindSensor").Msg("error selecting sensor")
		return models.Sensor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sensor, nil
}

func (r *sensorRepository) ListSensors(ctx context.Context, ownerID int64, search string, limit, offset uint64) ([]models.Sensor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSensorsQuery(r.db.builder(), ownerID, search, limit, offset)
	if err != nil {
		return nil, err
	}

	var sensors []models.Sensor
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		sensors = make([]models.Sensor, 0, limit)
		for rows.Next() {
			sensor, err := scanSensor(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			sensors = append(sensors, sensor)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*sensorRepository.ListSensors").Msg("error listing sensors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sensors, nil
}

func (r *sensorRepository) CountSensors(ctx context.Context, ownerID int64, search string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountSensorsQuery(r.db.builder(), ownerID, search)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*sensorRepository.CountSensors").Msg("error counting sensors")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSensor(row rowScanner) (models.Sensor, error) {
	var sensor models.Sensor
	if err := row.Scan(&sensor.ID, &sensor.Name, &sensor.Type, &sensor.OwnerID, timeScanner{&sensor.CreatedAt}); err != nil {
		return models.Sensor{}, err
	}

	return sensor, nil
}

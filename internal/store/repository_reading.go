// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

type readingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReadingRepository constructs a [ReadingRepository] backed by db.
func NewReadingRepository(db *DB, logger *logger.Logger) ReadingRepository {
	logger.Debug().Msg("creating reading repository")
	return &readingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReading stores reading. The (sensor_id, recorded_at) unique
// constraint decides duplicates, so two concurrent inserts of the same
// timestamp leave exactly one row.
func (r *readingRepository) CreateReading(ctx context.Context, reading models.Reading) (models.Reading, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReadingQuery(r.db.builder(), reading)
	if err != nil {
		return models.Reading{}, err
	}

	created, err := scanReading(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			log.Debug().Str("func", "*readingRepository.CreateReading").Int64("sensor_id", reading.SensorID).Msg("duplicate reading")
			return models.Reading{}, ErrReadingAlreadyExists
		case ForeignKeyViolation:
			return models.Reading{}, ErrSensorNotFound
		}

		log.Err(err).Str("func", "*readingRepository.CreateReading").Msg("error inserting reading")
		return models.Reading{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *readingRepository) ListReadings(ctx context.Context, sensorID int64, q models.ReadingQuery) ([]models.Reading, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReadingsQuery(r.db.builder(), sensorID, q)
	if err != nil {
		return nil, err
	}

	var readings []models.Reading
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		readings = make([]models.Reading, 0)
		for rows.Next() {
			reading, err := scanReading(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			readings = append(readings, reading)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*readingRepository.ListReadings").Msg("error listing readings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return readings, nil
}

func scanReading(row rowScanner) (models.Reading, error) {
	var (
		reading  models.Reading
		humidity sql.NullFloat64
	)
	if err := row.Scan(&reading.ID, &reading.SensorID, &reading.Temperature, &humidity, timeScanner{&reading.Timestamp}); err != nil {
		return models.Reading{}, err
	}

	if humidity.Valid {
		reading.Humidity = &humidity.Float64
	}

	return reading, nil
}

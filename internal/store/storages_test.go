// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

// newSQLiteStorages opens a fresh in-memory database with the full schema.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestUser(t *testing.T, s *Storages, username string) models.User {
	t.Helper()
	user, err := s.UserRepository.CreateUser(context.Background(), models.User{Username: username, PasswordHash: "hash"})
	require.NoError(t, err)
	return user
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewStorages_SQLiteFileIsReusable(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "db", "hub.db")
	ctx := context.Background()

	s, err := NewStorages(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// reopening runs migrations again and keeps the data
	s, err = NewStorages(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	user, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestSQLite_Ping(t *testing.T) {
	s := newSQLiteStorages(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestSQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	assert.NotZero(t, alice.UserID)
	assert.False(t, alice.CreatedAt.IsZero())

	_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, found.UserID)

	_, err = s.UserRepository.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_Tokens(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")

	first, err := s.TokenRepository.GetOrCreateToken(ctx, alice.UserID, "first-candidate")
	require.NoError(t, err)
	assert.Equal(t, "first-candidate", first.Key)

	second, err := s.TokenRepository.GetOrCreateToken(ctx, alice.UserID, "second-candidate")
	require.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)

	principal, err := s.TokenRepository.FindPrincipalByToken(ctx, first.Key)
	require.NoError(t, err)
	assert.Equal(t, models.Principal{UserID: alice.UserID, Username: "alice"}, principal)

	_, err = s.TokenRepository.FindPrincipalByToken(ctx, "second-candidate")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	_, err = s.TokenRepository.GetOrCreateToken(ctx, 9999, "orphan")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_Tokens_KeyOfAnotherUser(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	_, err := s.TokenRepository.GetOrCreateToken(ctx, alice.UserID, "shared-key")
	require.NoError(t, err)

	_, err = s.TokenRepository.GetOrCreateToken(ctx, bob.UserID, "shared-key")
	assert.ErrorIs(t, err, ErrTokenKeyTaken)

	principal, err := s.TokenRepository.FindPrincipalByToken(ctx, "shared-key")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, principal.UserID)
}

func TestSQLite_Tokens_ConcurrentIssuanceAgrees(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")

	const workers = 8
	keys := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := s.TokenRepository.GetOrCreateToken(ctx, alice.UserID, fmt.Sprintf("candidate-%d", i))
			assert.NoError(t, err)
			keys[i] = token.Key
		}()
	}
	wg.Wait()

	for _, key := range keys {
		assert.Equal(t, keys[0], key)
	}
}

func TestSQLite_Sensors(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	names := []struct{ name, typ string }{
		{"TempA", "thermo"},
		{"HumB", "hygro"},
		{"Garage", "TEMPERATURE"},
		{"100%_sure", "misc"},
	}
	var created []models.Sensor
	for _, n := range names {
		sensor, err := s.SensorRepository.CreateSensor(ctx, models.Sensor{Name: n.name, Type: n.typ, OwnerID: alice.UserID})
		require.NoError(t, err)
		created = append(created, sensor)
	}
	_, err := s.SensorRepository.CreateSensor(ctx, models.Sensor{Name: "BobTemp", Type: "thermo", OwnerID: bob.UserID})
	require.NoError(t, err)

	t.Run("list is owner scoped and ordered by id", func(t *testing.T) {
		sensors, err := s.SensorRepository.ListSensors(ctx, alice.UserID, "", 10, 0)
		require.NoError(t, err)
		require.Len(t, sensors, 4)
		for i := range sensors {
			assert.Equal(t, created[i].ID, sensors[i].ID)
		}
	})

	t.Run("search matches name or type ignoring case", func(t *testing.T) {
		sensors, err := s.SensorRepository.ListSensors(ctx, alice.UserID, "temp", 10, 0)
		require.NoError(t, err)
		require.Len(t, sensors, 2)
		assert.Equal(t, "TempA", sensors[0].Name)
		assert.Equal(t, "Garage", sensors[1].Name)

		count, err := s.SensorRepository.CountSensors(ctx, alice.UserID, "temp")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		sensors, err := s.SensorRepository.ListSensors(ctx, alice.UserID, "%_", 10, 0)
		require.NoError(t, err)
		require.Len(t, sensors, 1)
		assert.Equal(t, "100%_sure", sensors[0].Name)
	})

	t.Run("pagination", func(t *testing.T) {
		sensors, err := s.SensorRepository.ListSensors(ctx, alice.UserID, "", 3, 3)
		require.NoError(t, err)
		require.Len(t, sensors, 1)
		assert.Equal(t, created[3].ID, sensors[0].ID)

		sensors, err = s.SensorRepository.ListSensors(ctx, alice.UserID, "", 3, 30)
		require.NoError(t, err)
		assert.Empty(t, sensors)
	})

	t.Run("find is owner scoped", func(t *testing.T) {
		found, err := s.SensorRepository.FindSensor(ctx, alice.UserID, created[0].ID)
		require.NoError(t, err)
		assert.Equal(t, created[0], found)

		_, err = s.SensorRepository.FindSensor(ctx, bob.UserID, created[0].ID)
		assert.ErrorIs(t, err, ErrSensorNotFound)
	})
}

func TestSQLite_Readings(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")
	sensor, err := s.SensorRepository.CreateSensor(ctx, models.Sensor{Name: "TempA", Type: "thermo", OwnerID: alice.UserID})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	humidity := 50.0
	offsets := []time.Duration{-120 * time.Minute, -45 * time.Minute, -5 * time.Minute}
	for _, off := range offsets {
		reading, err := s.ReadingRepository.CreateReading(ctx, models.Reading{
			SensorID:    sensor.ID,
			Temperature: 21.5,
			Humidity:    &humidity,
			Timestamp:   now.Add(off),
		})
		require.NoError(t, err)
		assert.NotZero(t, reading.ID)
		assert.True(t, now.Add(off).Equal(reading.Timestamp))
	}

	t.Run("duplicate timestamp is rejected without a second row", func(t *testing.T) {
		_, err := s.ReadingRepository.CreateReading(ctx, models.Reading{SensorID: sensor.ID, Temperature: 30, Timestamp: now.Add(-45 * time.Minute)})
		assert.ErrorIs(t, err, ErrReadingAlreadyExists)

		readings, err := s.ReadingRepository.ListReadings(ctx, sensor.ID, models.ReadingQuery{})
		require.NoError(t, err)
		assert.Len(t, readings, 3)
	})

	t.Run("same instant in another zone is still a duplicate", func(t *testing.T) {
		_, err := s.ReadingRepository.CreateReading(ctx, models.Reading{
			SensorID:    sensor.ID,
			Temperature: 30,
			Timestamp:   now.Add(-5 * time.Minute).In(time.FixedZone("EET", 2*3600)),
		})
		assert.ErrorIs(t, err, ErrReadingAlreadyExists)
	})

	t.Run("newest first", func(t *testing.T) {
		readings, err := s.ReadingRepository.ListReadings(ctx, sensor.ID, models.ReadingQuery{})
		require.NoError(t, err)
		require.Len(t, readings, 3)
		for i := 1; i < len(readings); i++ {
			assert.True(t, readings[i-1].Timestamp.After(readings[i].Timestamp))
		}
	})

	t.Run("inclusive window", func(t *testing.T) {
		from := now.Add(-60 * time.Minute)
		to := now.Add(-10 * time.Minute)

		readings, err := s.ReadingRepository.ListReadings(ctx, sensor.ID, models.ReadingQuery{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, readings, 1)
		assert.True(t, now.Add(-45*time.Minute).Equal(readings[0].Timestamp))

		exact := now.Add(-5 * time.Minute)
		readings, err = s.ReadingRepository.ListReadings(ctx, sensor.ID, models.ReadingQuery{From: &exact, To: &exact})
		require.NoError(t, err)
		assert.Len(t, readings, 1)
	})

	t.Run("missing humidity stays null", func(t *testing.T) {
		reading, err := s.ReadingRepository.CreateReading(ctx, models.Reading{SensorID: sensor.ID, Temperature: 19, Timestamp: now.Add(time.Minute)})
		require.NoError(t, err)
		assert.Nil(t, reading.Humidity)
	})

	t.Run("unknown sensor", func(t *testing.T) {
		_, err := s.ReadingRepository.CreateReading(ctx, models.Reading{SensorID: 9999, Temperature: 19, Timestamp: now})
		assert.ErrorIs(t, err, ErrSensorNotFound)
	})
}

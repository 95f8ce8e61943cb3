// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/models"
)

const (
	insertUserSQL       = "INSERT INTO users (username,password_hash) VALUES ($1,$2) RETURNING user_id, username, password_hash, created_at"
	selectUserByNameSQL = "SELECT user_id, username, password_hash, created_at FROM users WHERE username = $1"
)

var userRowColumns = []string{"user_id", "username", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockPostgres(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertUserSQL).
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "hash", now))

	created, err := repo.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	assert.Equal(t, models.User{UserID: 1, Username: "alice", PasswordHash: "hash", CreatedAt: now}, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(insertUserSQL).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(insertUserSQL).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(insertUserSQL).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1)) // wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.Error(t, err)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("EET", 2*3600))

	mock.ExpectQuery(selectUserByNameSQL).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(4, "alice", "hash", now))

	user, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.UserID)
	assert.Equal(t, time.UTC, user.CreatedAt.Location())
	assert.True(t, now.Equal(user.CreatedAt))
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserByNameSQL).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(selectUserByNameSQL).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(selectUserByNameSQL).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(4, "alice", "hash", now))

	user, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	for range defaultMaxRetries + 1 {
		mock.ExpectQuery(selectUserByNameSQL).
			WithArgs("alice").
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(selectUserByNameSQL).
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

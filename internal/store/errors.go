// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registering a user fails because
	// the username is already in use.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when no user matches the lookup, or when a
	// row references a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenNotFound is returned when no token matches the presented key.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenKeyTaken is returned when a newly generated token key collides
	// with the key of another user.
	ErrTokenKeyTaken = errors.New("token key already in use")

	// ErrSensorNotFound is returned when the sensor does not exist or is
	// owned by somebody else. The two cases are deliberately identical.
	ErrSensorNotFound = errors.New("sensor not found")

	// ErrReadingAlreadyExists is returned when the sensor already has a
	// reading at the same timestamp.
	ErrReadingAlreadyExists = errors.New("reading with this timestamp already exists for the sensor")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnknownDriver is returned for a database driver other than
	// postgres and sqlite3.
	ErrUnknownDriver = errors.New("unknown database driver")
)

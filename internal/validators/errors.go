// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Errors of the validator itself. They signal a programming mistake rather
// than bad client input.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Input errors. Their messages are shown to API clients.
var (
	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username must be at most 150 characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")

	ErrEmptySensorName   = errors.New("name is required")
	ErrSensorNameTooLong = errors.New("name must be at most 100 characters")
	ErrEmptySensorType   = errors.New("type is required")
	ErrSensorTypeTooLong = errors.New("type must be at most 50 characters")

	ErrMissingTemperature = errors.New("temperature is required")
	ErrMissingTimestamp   = errors.New("timestamp is required")
)

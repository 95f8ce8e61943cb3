// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided marks every input rejected by validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by login for an unknown username or
	// a wrong password. The two cases are not distinguished.
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")

	// ErrInvalidToken is returned when a bearer token is empty or unknown, or
	// when an operation receives no authenticated principal.
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError carries the input error that made a request invalid.
// It matches both [ErrInvalidDataProvided] and the wrapped error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidDataProvided, e.Err}
}

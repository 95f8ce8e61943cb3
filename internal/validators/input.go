// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/sensor-hub/models"
)

// Length limits of user supplied values, in characters.
const (
	MaxUsernameLength   = 150
	MinPasswordLength   = 6
	// MaxPasswordBytes is the input limit of bcrypt.
	MaxPasswordBytes    = 72
	MaxSensorNameLength = 100
	MaxSensorTypeLength = 50
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldUsername requires a non-blank username.
	FieldUsername = "username"
	// FieldUsernameLength enforces MaxUsernameLength.
	FieldUsernameLength = "username_length"
	// FieldPassword requires a non-empty password.
	FieldPassword = "password"
	// FieldPasswordLength enforces MinPasswordLength and MaxPasswordBytes.
	FieldPasswordLength = "password_length"

	FieldSensorName = "name"
	FieldSensorType = "type"

	FieldTemperature = "temperature"
	FieldTimestamp   = "timestamp"
)

// InputValidator implements [Validator] for the request payloads of the
// API: [models.Credentials], [models.SensorInput] and [models.ReadingInput].
type InputValidator struct{}

// NewInputValidator returns a ready to use [InputValidator].
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// Validate checks value against the listed fields, or against every field
// of its type when none is given. It returns the first failing check.
func (v *InputValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SensorInput:
		return v.validateSensorInput(value, fields...)
	case *models.SensorInput:
		return v.validateSensorInput(*value, fields...)

	case models.ReadingInput:
		return v.validateReadingInput(value, fields...)
	case *models.ReadingInput:
		return v.validateReadingInput(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldUsernameLength, FieldPassword, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(c.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldUsernameLength:
			if utf8.RuneCountInString(c.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(c.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateSensorInput(s models.SensorInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSensorName, FieldSensorType}
	}

	for _, f := range fields {
		switch f {
		case FieldSensorName:
			if err := checkText(s.Name, MaxSensorNameLength, ErrEmptySensorName, ErrSensorNameTooLong); err != nil {
				return err
			}
		case FieldSensorType:
			if err := checkText(s.Type, MaxSensorTypeLength, ErrEmptySensorType, ErrSensorTypeTooLong); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateReadingInput(r models.ReadingInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTemperature, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldTemperature:
			if r.Temperature == nil {
				return ErrMissingTemperature
			}
		case FieldTimestamp:
			if r.Timestamp == nil || r.Timestamp.IsZero() {
				return ErrMissingTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkText validates a trimmed, required, length-limited text value.
func checkText(value string, maxLen int, errEmpty, errTooLong error) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(value) > maxLen {
		return errTooLong
	}
	return nil
}

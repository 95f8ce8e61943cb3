// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns sensors.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored and the hash is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair supplied to the register and
// login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

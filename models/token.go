// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an opaque bearer credential bound to exactly one user.
//
// Key carries no claims; it is validated only by looking it up in the store.
// A user has at most one live token at a time.
type Token struct {
	// Key is the opaque token value sent as "Authorization: Bearer <Key>".
	Key string `json:"token"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// CreatedAt is the moment the token was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// String returns the opaque key. It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Key
}

// Principal is the authenticated identity attached to a request after its
// bearer token has been resolved. Every sensor and reading operation is
// scoped by Principal.UserID.
type Principal struct {
	UserID   int64
	Username string
}

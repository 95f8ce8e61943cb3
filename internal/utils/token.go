// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenBytes is the amount of randomness in a bearer token.
// The hex-encoded key is twice as long.
const TokenBytes = 20

// GenerateToken returns a new opaque bearer token key of 2*[TokenBytes]
// lowercase hex characters.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

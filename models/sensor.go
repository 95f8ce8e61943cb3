// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Sensor is a device registered by, and visible only to, its owner.
type Sensor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Sensor model.
func (s Sensor) TableName() string {
	return "sensors"
}

// SensorInput is the client-supplied part of a new sensor.
// It has no owner field: the owner always comes from the authenticated
// principal.
type SensorInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SensorQuery holds the listing parameters for sensors.
type SensorQuery struct {
	// Search is matched case-insensitively as a substring of name or type.
	// An empty value disables the filter.
	Search string

	// Page is the 1-based page number.
	Page int
}

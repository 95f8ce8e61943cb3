// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reading is a single immutable measurement of a sensor.
// (SensorID, Timestamp) is unique.
type Reading struct {
	ID          int64     `json:"id"`
	SensorID    int64     `json:"-"`
	Temperature float64   `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Reading model.
func (r Reading) TableName() string {
	return "readings"
}

// ReadingInput is the request body of a new reading. Pointer fields let the
// service tell a missing value from a zero one.
type ReadingInput struct {
	Temperature *float64   `json:"temperature"`
	Humidity    *float64   `json:"humidity"`
	Timestamp   *time.Time `json:"timestamp"`
}

// ReadingQuery holds the optional inclusive timestamp bounds of a readings
// listing. A nil bound is not applied.
type ReadingQuery struct {
	From *time.Time
	To   *time.Time
}

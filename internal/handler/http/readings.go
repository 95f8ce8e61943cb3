// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/sensor-hub/internal/filter"
	"github.com/MKhiriev/sensor-hub/internal/service"
	"github.com/MKhiriev/sensor-hub/internal/utils"
	"github.com/MKhiriev/sensor-hub/models"
)

// readingRequest is the wire form of a new reading. The timestamp is kept
// as text so that naive and space separated values are accepted too.
type readingRequest struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Timestamp   *string  `json:"timestamp"`
}

func (h *Handler) listReadings(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	sensorID, err := sensorIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := filter.ParseReadingQuery(r.Context(), r.URL.Query())

	readings, err := h.services.ReadingService.List(r.Context(), principal, sensorID, query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, readings, http.StatusOK)
}

func (h *Handler) createReading(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	sensorID, err := sensorIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req readingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}

	reading, err := h.services.ReadingService.Create(r.Context(), principal, sensorID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reading, http.StatusCreated)
}

func (req readingRequest) toInput() (models.ReadingInput, error) {
	input := models.ReadingInput{
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
	}

	if req.Timestamp != nil && *req.Timestamp != "" {
		ts, ok := filter.ParseTimestamp(*req.Timestamp)
		if !ok {
			return models.ReadingInput{}, ErrInvalidTimestamp
		}
		input.Timestamp = &ts
	}

	return input, nil
}

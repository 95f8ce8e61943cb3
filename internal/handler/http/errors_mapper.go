// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sensor-hub/internal/filter"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/service"
	"github.com/MKhiriev/sensor-hub/internal/store"
	"github.com/MKhiriev/sensor-hub/internal/utils"
)

// errorStatus binds an error to the status and client-facing detail it is
// answered with. An empty detail means the error message itself.
type errorStatus struct {
	target error
	status int
	detail string
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidForm, status: http.StatusBadRequest},
	{target: ErrInvalidSensorID, status: http.StatusBadRequest},
	{target: ErrInvalidTimestamp, status: http.StatusBadRequest},
	{target: filter.ErrInvalidPage, status: http.StatusBadRequest},
	{target: store.ErrUsernameTaken, status: http.StatusBadRequest, detail: "A user with that username already exists."},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},

	{target: store.ErrReadingAlreadyExists, status: http.StatusConflict},

	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrEmptyToken, status: http.StatusUnauthorized},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized, detail: "Invalid token."},

	{target: store.ErrSensorNotFound, status: http.StatusNotFound, detail: "Not found."},
}

// statusFromError returns the HTTP status and the detail shown to the client
// for err. Unknown errors become a bare 500 so internal messages never leak.
func statusFromError(err error) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			if es.detail == "" {
				return es.status, es.target.Error()
			}
			return es.status, es.detail
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError answers the request with the status and detail mapped from err.
// Server errors are logged with their full message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	}
	utils.WriteError(w, detail, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Not found.", http.StatusNotFound)
}

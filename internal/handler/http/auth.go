// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/sensor-hub/internal/utils"
	"github.com/MKhiriev/sensor-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.Key}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	credentials, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.Key}, http.StatusOK)
}

// decodeCredentials reads username and password from a JSON body, or from
// the query string and an urlencoded or multipart form otherwise. Fields
// missing from a JSON body are looked up in the query string.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if isJSONRequest(r) {
		var credentials models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil && !errors.Is(err, io.EOF) {
			return models.Credentials{}, ErrInvalidJSON
		}

		query := r.URL.Query()
		if credentials.Username == "" {
			credentials.Username = query.Get("username")
		}
		if credentials.Password == "" {
			credentials.Password = query.Get("password")
		}
		return credentials, nil
	}

	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.Credentials{}, ErrInvalidForm
	}

	return models.Credentials{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}, nil
}

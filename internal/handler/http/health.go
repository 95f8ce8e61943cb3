// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/utils"
	"github.com/MKhiriev/sensor-hub/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status:  "ok",
		Version: h.services.HealthService.Version(),
	}

	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		response.Status = "unavailable"
		utils.WriteJSON(w, response, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

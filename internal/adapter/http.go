// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/sensor-hub/internal/config"
	"github.com/MKhiriev/sensor-hub/internal/logger"
	"github.com/MKhiriev/sensor-hub/internal/utils"
	"github.com/MKhiriev/sensor-hub/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress; "http://" is assumed when the
// address has no scheme.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return h.obtainToken(ctx, "/api/auth/register", credentials)
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return h.obtainToken(ctx, "/api/auth/token", credentials)
}

func (h *httpServerAdapter) obtainToken(ctx context.Context, path string, credentials models.Credentials) (models.Token, error) {
	var tr models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tr).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}
	if tr.Token == "" {
		return models.Token{}, fmt.Errorf("%s: empty token in response", path)
	}

	h.SetToken(tr.Token)
	h.logger.Debug().Str("username", credentials.Username).Str("path", path).Msg("token obtained")

	return models.Token{Key: tr.Token}, nil
}

func (h *httpServerAdapter) CreateSensor(ctx context.Context, input models.SensorInput) (models.Sensor, error) {
	var sensor models.Sensor

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&sensor).
		Post("/api/sensors")
	if err != nil {
		return models.Sensor{}, fmt.Errorf("create sensor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Sensor{}, err
	}

	return sensor, nil
}

func (h *httpServerAdapter) ListSensors(ctx context.Context, search string, page int) (models.Page[models.Sensor], error) {
	var result models.Page[models.Sensor]

	req := h.authedRequest(ctx).SetResult(&result)
	if search != "" {
		req.SetQueryParam("q", search)
	}
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}

	resp, err := req.Get("/api/sensors")
	if err != nil {
		return models.Page[models.Sensor]{}, fmt.Errorf("list sensors request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.Sensor]{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) CreateReading(ctx context.Context, sensorID int64, input models.ReadingInput) (models.Reading, error) {
	var reading models.Reading

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(sensorID, 10)).
		SetBody(input).
		SetResult(&reading).
		Post("/api/sensors/{id}/readings")
	if err != nil {
		return models.Reading{}, fmt.Errorf("create reading request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Reading{}, err
	}

	reading.SensorID = sensorID
	return reading, nil
}

func (h *httpServerAdapter) ListReadings(ctx context.Context, sensorID int64, query models.ReadingQuery) ([]models.Reading, error) {
	var readings []models.Reading

	req := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(sensorID, 10)).
		SetResult(&readings)
	if query.From != nil {
		req.SetQueryParam("timestamp_from", query.From.UTC().Format(time.RFC3339Nano))
	}
	if query.To != nil {
		req.SetQueryParam("timestamp_to", query.To.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get("/api/sensors/{id}/readings")
	if err != nil {
		return nil, fmt.Errorf("list readings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	for i := range readings {
		readings[i].SensorID = sensorID
	}
	return readings, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}

	return health, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

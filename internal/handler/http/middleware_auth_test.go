// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sensor-hub/internal/service"
	"github.com/MKhiriev/sensor-hub/internal/utils"
	"github.com/MKhiriev/sensor-hub/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc123", want: "abc123"},
		{name: "scheme is case insensitive", header: "bearer abc123", want: "abc123"},
		{name: "extra spaces", header: "  Bearer   abc123  ", want: "abc123"},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "blank", header: "   ", wantErr: ErrEmptyAuthorizationHeader},
		{name: "other scheme", header: "Token abc123", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic auth", header: "Basic YWxpY2U6c2VjcmV0", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "too many parts", header: "Bearer abc 123", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		authErr        error
		wantStatus     int
		wantDetail     string
		wantChallenge  bool
		wantNextCalled bool
	}{
		{
			name:           "valid token",
			header:         "Bearer valid",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:          "missing header",
			wantStatus:    http.StatusUnauthorized,
			wantDetail:    ErrEmptyAuthorizationHeader.Error(),
			wantChallenge: true,
		},
		{
			name:          "wrong scheme",
			header:        "Token valid",
			wantStatus:    http.StatusUnauthorized,
			wantDetail:    ErrInvalidAuthorizationHeader.Error(),
			wantChallenge: true,
		},
		{
			name:          "unknown token",
			header:        "Bearer nope",
			authErr:       service.ErrInvalidToken,
			wantStatus:    http.StatusUnauthorized,
			wantDetail:    "Invalid token.",
			wantChallenge: true,
		},
		{
			name:       "store failure",
			header:     "Bearer valid",
			authErr:    errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authenticateFn: func(_ context.Context, key string) (models.Principal, error) {
					if tt.authErr != nil {
						return models.Principal{}, tt.authErr
					}
					assert.Equal(t, "valid", key)
					return alice, nil
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				principal, ok := utils.GetPrincipalFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, alice, principal)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sensors", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detailOf(t, rr))
			}
			if tt.wantChallenge {
				assert.Equal(t, `Bearer realm="api"`, rr.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(nil)

	routes := []struct{ method, target string }{
		{http.MethodGet, "/api/sensors"},
		{http.MethodPost, "/api/sensors"},
		{http.MethodGet, "/api/sensors/1/readings"},
		{http.MethodPost, "/api/sensors/1/readings"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rr := serve(t, h, route.method, route.target, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestWithGZip(t *testing.T) {
	const payload = `{"temperature":21.5,"timestamp":"2026-03-01T12:00:00Z"}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            []byte
		wantStatus      int
		wantCompressed  bool
		wantBodySeen    string
	}{
		{
			name:       "plain in plain out",
			body:       []byte(payload),
			wantStatus: http.StatusOK,
		},
		{
			name:           "compressed response",
			acceptEncoding: "gzip, deflate",
			body:           []byte(payload),
			wantStatus:     http.StatusOK,
			wantCompressed: true,
		},
		{
			name:            "compressed request",
			contentEncoding: "gzip",
			body:            gzipBytes(t, payload),
			wantStatus:      http.StatusOK,
			wantBodySeen:    payload,
		},
		{
			name:            "compressed both ways",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			body:            gzipBytes(t, payload),
			wantStatus:      http.StatusOK,
			wantCompressed:  true,
			wantBodySeen:    payload,
		},
		{
			name:            "invalid gzip body",
			contentEncoding: "gzip",
			body:            []byte("not gzip"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				seen = string(b)
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				_, _ = w.Write([]byte(payload))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sensors/1/readings", bytes.NewReader(tt.body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.JSONEq(t, `{"detail":"invalid gzip data"}`, rr.Body.String())
				return
			}

			if tt.wantBodySeen != "" {
				assert.Equal(t, tt.wantBodySeen, seen)
			}

			if tt.wantCompressed {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, payload, gunzip(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rr.Body.String())
			}
		})
	}
}

func TestWithGZip_ExplicitStatusKept(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "99")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Less(t, rr.Body.Len(), 1000)
	assert.Equal(t, strings.Repeat("a", 1000), gunzip(t, rr.Body.Bytes()))
}

func TestWithGZip_NoBodyNoEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWrappedReadCloser(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}

	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

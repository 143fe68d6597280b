// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInfoAdapter(t *testing.T, serverURL string) InfoAdapter {
	t.Helper()
	a, err := NewHTTPInfoAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestServerVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestInfoAdapter(t, srv.URL).ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestServerVersion_MapsStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestInfoAdapter(t, srv.URL).ServerVersion(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerVersion_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestInfoAdapter(t, srv.URL).ServerVersion(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestServerVersion_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newTestInfoAdapter(t, addr).ServerVersion(context.Background())
	assert.Error(t, err)
}

func TestNewHTTPInfoAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPInfoAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/imperium/internal/api"
	"github.com/taibuivan/imperium/internal/core/emperor"
	"github.com/taibuivan/imperium/internal/platform/config"
	"github.com/taibuivan/imperium/internal/platform/constants"
	"github.com/taibuivan/imperium/internal/platform/middleware"
)

type mapStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (store *mapStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	return value, ok, nil
}

func (store *mapStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	return nil
}

func newTestServer(t *testing.T, store middleware.ResponseStore, deps api.HealthDependencies) http.Handler {
	t.Helper()

	empire, err := emperor.NewRomanEmpire()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "development", CacheTTL: time.Minute}

	if deps.Records == nil {
		deps.Records = empire.Len
	}
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	server := api.NewServer(cfg, logger, middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst), store, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Emperor:   emperor.NewHandler(emperor.NewService(empire)),
	})
	return server.Handler()
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

/*
TestServer_Routes checks probes and versioned API mounting.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, nil, api.HealthDependencies{})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/v1/emperors", http.StatusOK},
		{"/api/v1/emperors/by-year/69", http.StatusOK},
		{"/api/v1/rankings/longest-reign?n=3", http.StatusOK},
		{"/api/v1/dynasties/severan/emperors", http.StatusOK},
		{"/api/v1/emperors/search?name=romulus", http.StatusNotFound},
		{"/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := get(handler, tt.path)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}
}

/*
TestServer_ResponseCache verifies that API queries are cached and probes are not.
*/
func TestServer_ResponseCache(t *testing.T) {
	store := &mapStore{values: make(map[string][]byte)}
	handler := newTestServer(t, store, api.HealthDependencies{})

	first := get(handler, "/api/v1/emperors/by-wife?name=poppaea")
	second := get(handler, "/api/v1/emperors/by-wife?name=poppaea")

	assert.Equal(t, "MISS", first.Header().Get(constants.HeaderXCache))
	assert.Equal(t, "HIT", second.Header().Get(constants.HeaderXCache))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	probe := get(handler, "/health")
	assert.Empty(t, probe.Header().Get(constants.HeaderXCache))
}

/*
TestServer_Readiness reports a degraded state when the cache is unreachable.
*/
func TestServer_Readiness(t *testing.T) {
	handler := newTestServer(t, nil, api.HealthDependencies{
		CheckCache: func() error { return errors.New("dial tcp: connection refused") },
	})

	recorder := get(handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")

	empty := newTestServer(t, nil, api.HealthDependencies{Records: func() int { return 0 }})
	assert.Equal(t, http.StatusServiceUnavailable, get(empty, "/ready").Code)
}

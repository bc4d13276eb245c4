// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/imperium/internal/platform/constants"
	"github.com/taibuivan/imperium/internal/platform/ctxutil"
	"github.com/taibuivan/imperium/internal/platform/middleware"
)

// memoryStore is an in-process [middleware.ResponseStore] for tests.
type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
	err    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (store *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return nil, false, store.err
	}
	value, ok := store.values[key]
	return value, ok, nil
}

func (store *memoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return store.err
	}
	store.values[key] = value
	return nil
}

type corsConfig struct {
	development bool
	allowed     string
}

func (c corsConfig) IsDevelopment() bool { return c.development }
func (c corsConfig) IsOriginAllowed(origin string) bool { return origin == c.allowed }

/*
TestRequestID verifies that client IDs are kept and missing ones are generated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	// 1. Client-provided ID is propagated
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "trace-69")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "trace-69", seen)
	assert.Equal(t, "trace-69", recorder.Header().Get(constants.HeaderXRequestID))

	// 2. Missing ID is generated
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestRateLimit verifies that a client exceeding its burst receives 429.
*/
func TestRateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1)
	handler := middleware.RateLimit(limiter)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRealIP, ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// Other clients have their own bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))

	// Eviction resets the bucket
	limiter.Cleanup(-time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
}

/*
TestPanicRecovery verifies that panics become a JSON 500.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

/*
TestCORS checks origin handling per environment and pre-flight short-circuiting.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		cfg        corsConfig
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{"dev_any_origin", corsConfig{development: true}, "http://localhost:3000", http.MethodGet, "http://localhost:3000", http.StatusOK},
		{"prod_allowed", corsConfig{allowed: "https://rome.example"}, "https://rome.example", http.MethodGet, "https://rome.example", http.StatusOK},
		{"prod_rejected", corsConfig{allowed: "https://rome.example"}, "https://carthage.example", http.MethodGet, "", http.StatusOK},
		{"preflight", corsConfig{development: true}, "http://localhost:3000", http.MethodOptions, "http://localhost:3000", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, "/api/v1/emperors", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)
			recorder := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantHeader, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

/*
TestResponseCache_MissThenHit verifies that a second identical GET is served from the store.
*/
func TestResponseCache_MissThenHit(t *testing.T) {
	store := newMemoryStore()
	calls := 0

	handler := middleware.ResponseCache(store, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		calls++
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"data":"Augustus"}`))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/emperors?page=1", nil))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/emperors?page=1", nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "MISS", first.Header().Get(constants.HeaderXCache))
	assert.Equal(t, "HIT", second.Header().Get(constants.HeaderXCache))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))
}

/*
TestResponseCache_SkipsErrorsAndFailures covers non-200 responses and a failing store.
*/
func TestResponseCache_SkipsErrorsAndFailures(t *testing.T) {
	t.Run("non_200_not_stored", func(t *testing.T) {
		store := newMemoryStore()
		handler := middleware.ResponseCache(store, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Empty(t, store.values)
	})

	t.Run("store_failure_bypassed", func(t *testing.T) {
		store := newMemoryStore()
		store.err = errors.New("connection refused")

		handler := middleware.ResponseCache(store, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte("ok"))
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})

	t.Run("nil_store_passthrough", func(t *testing.T) {
		handler := middleware.ResponseCache(nil, time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			_, _ = writer.Write([]byte("ok"))
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, recorder.Header().Get(constants.HeaderXCache))
	})
}

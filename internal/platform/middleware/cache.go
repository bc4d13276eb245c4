// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/imperium/internal/platform/constants"
	"github.com/taibuivan/imperium/internal/platform/ctxutil"
)

// # Response Cache

// ResponseStore is the byte-oriented key/value contract behind [ResponseCache].
//
// A miss is reported as found=false with a nil error.
type ResponseStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// cachedResponse is the stored form of a successful GET response.
type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder tees the response body so it can be stored after the handler returns.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (recorder *bodyRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *bodyRecorder) Write(data []byte) (int, error) {
	recorder.body.Write(data)
	return recorder.ResponseWriter.Write(data)
}

/*
ResponseCache serves repeated GET requests from store.

Description: Only 200 responses are stored, keyed by path and query string.
Cache failures are logged and bypassed; they never fail the request. The
X-Cache header reports HIT or MISS.

Parameters:
  - store: ResponseStore (nil disables caching)
  - ttl: time.Duration
*/
func ResponseCache(store ResponseStore, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil || ttl <= 0 {
			return next
		}

		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != http.MethodGet {
				next.ServeHTTP(writer, request)
				return
			}

			logger := ctxutil.GetLogger(request.Context())
			key := constants.CachePrefixResponse + request.URL.RequestURI()

			// 1. Serve from cache when possible
			if cached, ok := lookup(request.Context(), store, key, logger); ok {
				writer.Header().Set("Content-Type", cached.ContentType)
				writer.Header().Set(constants.HeaderXCache, "HIT")
				writer.WriteHeader(http.StatusOK)
				_, _ = writer.Write(cached.Body)
				return
			}

			// 2. Run the handler and capture its output
			writer.Header().Set(constants.HeaderXCache, "MISS")
			recorder := &bodyRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request)

			if recorder.status != http.StatusOK {
				return
			}

			// 3. Store the successful response
			payload, err := json.Marshal(cachedResponse{
				ContentType: writer.Header().Get("Content-Type"),
				Body:        recorder.body.Bytes(),
			})
			if err != nil {
				logger.WarnContext(request.Context(), "response_cache_encode_failed", slog.Any("error", err))
				return
			}

			storeCtx, cancel := context.WithTimeout(context.WithoutCancel(request.Context()), constants.CacheOperationTimeout)
			defer cancel()

			if err := store.Set(storeCtx, key, payload, ttl); err != nil {
				logger.WarnContext(request.Context(), "response_cache_store_failed", slog.Any("error", err))
			}
		})
	}
}

// lookup fetches and decodes a cached response. Any failure counts as a miss.
func lookup(ctx context.Context, store ResponseStore, key string, logger *slog.Logger) (cachedResponse, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, constants.CacheOperationTimeout)
	defer cancel()

	raw, found, err := store.Get(lookupCtx, key)
	if err != nil {
		logger.WarnContext(ctx, "response_cache_lookup_failed", slog.Any("error", err))
		return cachedResponse{}, false
	}
	if !found {
		return cachedResponse{}, false
	}

	var cached cachedResponse
	if err := json.Unmarshal(raw, &cached); err != nil {
		logger.WarnContext(ctx, "response_cache_decode_failed", slog.Any("error", err))
		return cachedResponse{}, false
	}

	return cached, true
}

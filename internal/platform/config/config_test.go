// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/imperium/internal/platform/config"
)

/*
TestLoad_Defaults verifies the zero-configuration startup path.
*/
func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "SERVER_PORT", "ENVIRONMENT", "REDIS_URL", "CACHE_TTL", "DATA_PATH", "ALLOWED_ORIGINS")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.Empty(t, cfg.DataPath)
}

/*
TestLoad_Overrides verifies environment overrides and list parsing.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DATA_PATH", "/srv/emperors.yaml")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.IsOriginAllowed("https://b.example"))
	assert.False(t, cfg.IsOriginAllowed("https://evil.example"))
	assert.Equal(t, "/srv/emperors.yaml", cfg.DataPath)
}

/*
TestLoad_InvalidDuration verifies that malformed values fail fast.
*/
func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

// unsetEnv removes keys for the duration of the test, restoring them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

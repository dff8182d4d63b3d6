// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/internal/platform/config"
)

/*
TestParse_Defaults verifies that an empty environment yields a runnable config.
*/
func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.BackendMemory, cfg.ProgressBackend)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.InDelta(t, 100.0, cfg.RateLimitRPS, 0)
	assert.Equal(t, 150, cfg.RateLimitBurst)
	assert.Empty(t, cfg.MigrationPath)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"./data/manga", "dist/data", "server/data"}, cfg.CatalogDirCandidates())
}

/*
TestParse_BackendRequirements checks that durable backends demand their connection setting.
*/
func TestParse_BackendRequirements(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		wantErr bool
	}{
		{"memory", []string{"PROGRESS_BACKEND=memory"}, false},
		{"upper_case_backend", []string{"PROGRESS_BACKEND=MEMORY"}, false},
		{"postgres_without_url", []string{"PROGRESS_BACKEND=postgres"}, true},
		{"postgres_with_url", []string{"PROGRESS_BACKEND=postgres", "DATABASE_URL=postgres://localhost/manga"}, false},
		{"redis_without_url", []string{"PROGRESS_BACKEND=redis"}, true},
		{"redis_with_url", []string{"PROGRESS_BACKEND=redis", "REDIS_URL=redis://localhost:6379/0"}, false},
		{"sqlite_default_path", []string{"PROGRESS_BACKEND=sqlite"}, false},
		{"unknown", []string{"PROGRESS_BACKEND=cassandra"}, true},
		{"zero_rate_limit", []string{"RATE_LIMIT_RPS=0"}, true},
		{"zero_burst", []string{"RATE_LIMIT_BURST=0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(tt.environ)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_Lists(t *testing.T) {
	cfg, err := config.Parse([]string{
		"ALLOWED_ORIGINS=https://a.example,https://b.example",
		"CATALOG_FALLBACK_DIRS=public/data, ,other",
		"CATALOG_LOAD_WORKERS=0",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"./data/manga", "public/data", "other"}, cfg.CatalogDirCandidates())
	assert.Equal(t, 1, cfg.CatalogLoadWorkers)
}

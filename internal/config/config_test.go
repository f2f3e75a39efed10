package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Workers.PoolSize)
	assert.Equal(t, 50, cfg.Matcher.MinScore)
	assert.Equal(t, 30, cfg.Matcher.MinResultCount)
	assert.Equal(t, 0.30, cfg.Matcher.RelaxedShare)
	assert.Equal(t, 15, cfg.Matcher.TopKeywords)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 24*time.Hour, cfg.Redis.ResultTTL)
	// Resume text persists across search sessions, well past result expiry.
	assert.Equal(t, 30*24*time.Hour, cfg.Redis.ResumeTTL)

	// The four sub-score weights stay within the clamp ceiling.
	sum := cfg.Matcher.TitleWeight + cfg.Matcher.KeywordWeight +
		cfg.Matcher.RequirementsWeight + cfg.Matcher.FilterBonusWeight
	assert.LessOrEqual(t, sum, 100)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
matcher:
  min_score: 60
  top_keywords: 20
logging:
  level: "debug"
  adapters:
    - name: "stdout"
      type: "stdout"
      enabled: true
      options:
        format: "text"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Matcher.MinScore)
	assert.Equal(t, 20, cfg.Matcher.TopKeywords)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.Len(t, cfg.Logging.Adapters, 1)
	assert.Equal(t, "stdout", cfg.Logging.Adapters[0].Type)

	// Unset fields keep their defaults.
	assert.Equal(t, 8, cfg.Workers.PoolSize)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("MATCHER_MIN_SCORE", "40")
	t.Setenv("WORKER_POOL_SIZE", "16")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REDIS_RESUME_TTL", "168h")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 40, cfg.Matcher.MinScore)
	assert.Equal(t, 16, cfg.Workers.PoolSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.ResumeTTL)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_REDIS_HOST", "redis.internal")

	expanded := expandEnvVars("url: redis://${TEST_REDIS_HOST}:6379")
	assert.Equal(t, "url: redis://redis.internal:6379", expanded)

	// Unknown variables are left untouched.
	unchanged := expandEnvVars("url: ${DEFINITELY_NOT_SET_VAR}")
	assert.Equal(t, "url: ${DEFINITELY_NOT_SET_VAR}", unchanged)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Contains(t, cfg.DBPath, ".worklog")
	assert.Equal(t, 27000, cfg.WorkNormSeconds)
	assert.False(t, cfg.NormOverridden)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WORKLOG_DB", "/tmp/test-worklog.db")
	t.Setenv("WORKLOG_NORM_SECONDS", "28800")
	t.Setenv("WORKLOG_LOG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-worklog.db", cfg.DBPath)
	assert.Equal(t, 28800, cfg.WorkNormSeconds)
	assert.True(t, cfg.NormOverridden)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_IgnoresInvalidNorm(t *testing.T) {
	t.Setenv("WORKLOG_NORM_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 27000, cfg.WorkNormSeconds)
	assert.False(t, cfg.NormOverridden)
}

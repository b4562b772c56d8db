package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvAPIToken, EnvSiteID, EnvCollectionID, EnvBaseURL, EnvOutputDir, EnvPageSize, EnvConfigPath} {
		t.Setenv(name, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Empty(t, cfg.APIToken)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api_token = "file-token"
site_id = "site-1"
collection_id = "col-1"
page_size = 50
timeout = "30s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.APIToken)
	assert.Equal(t, "site-1", cfg.SiteID)
	assert.Equal(t, "col-1", cfg.CollectionID)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api_token = "file-token"
collection_id = "col-1"
`)
	t.Setenv(EnvAPIToken, "env-token")
	t.Setenv(EnvPageSize, "25")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.APIToken)
	assert.Equal(t, "col-1", cfg.CollectionID)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, writeConfig(t, `site_id = "from-env-path"`))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env-path", cfg.SiteID)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = Load(writeConfig(t, `page_size = "many"`))
	assert.ErrorContains(t, err, "failed to parse config")

	t.Setenv(EnvPageSize, "lots")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvPageSize)
}

func TestValidate_ListsMissingSettings(t *testing.T) {
	cfg := &Config{APIToken: "token"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSiteID)
	assert.Contains(t, err.Error(), EnvCollectionID)
	assert.NotContains(t, err.Error(), EnvAPIToken)
}

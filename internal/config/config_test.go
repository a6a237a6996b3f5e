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
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "WEB_URL", "CMS_URL", "CMS_TIMEOUT", "CMS_PAGE_SIZE",
		"SEED_ENV_FILE", "DEMO_SLUG", "DEMO_TITLE", "SEED_FILE", "EXPORT_FILE",
		SeedTokenKey,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:1337", cfg.CMS.URL)
	assert.Equal(t, 10*time.Second, cfg.CMS.Timeout)
	assert.Equal(t, 50, cfg.CMS.PageSize)
	assert.Equal(t, filepath.Join("apps", "cms", ".env"), cfg.CMS.EnvFile)
	assert.Equal(t, "awni-electronics", cfg.Demo.Slug)
	assert.Equal(t, "Awni Electronics", cfg.Demo.Title)
	assert.Equal(t, filepath.Join("seed", "awni-electronics.json"), cfg.Paths.SeedFile)
	assert.Equal(t, filepath.Join(os.TempDir(), "awni-export.json"), cfg.Paths.ExportFile)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "http://localhost:3000", cfg.WebURL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CMS_URL", "http://cms.internal:8080")
	t.Setenv("CMS_TIMEOUT", "3s")
	t.Setenv("CMS_PAGE_SIZE", "25")
	t.Setenv("DEMO_SLUG", "royal-jewel")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://cms.internal:8080", cfg.CMS.URL)
	assert.Equal(t, 3*time.Second, cfg.CMS.Timeout)
	assert.Equal(t, 25, cfg.CMS.PageSize)
	assert.Equal(t, "royal-jewel", cfg.Demo.Slug)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CMS_TIMEOUT", "ten seconds")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CMS_TIMEOUT")

	clearEnv(t)
	t.Setenv("CMS_PAGE_SIZE", "lots")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CMS_PAGE_SIZE")

	clearEnv(t)
	t.Setenv("CMS_PAGE_SIZE", "0")
	_, err = Load()
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, ":5000", cfg.Server.Addr())
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "articles", cfg.Catalog.ArticlesDir)
	assert.Equal(t, "roms", cfg.Catalog.RomArticlesDir)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATA_DIR", "/srv/catalog")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, "/srv/catalog", cfg.Catalog.DataDir)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=7070\n"), 0o644))
	chdir(t, dir)
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())

	for key, value := range map[string]string{
		"ENVIRONMENT":    "staging",
		"SERVER_PORT":    "http",
		"LOG_FORMAT":     "xml",
		"RATE_LIMIT_RPS": "-1",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}

	t.Run("wildcard origin in production", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		_, err := Load()
		assert.ErrorContains(t, err, "ALLOWED_ORIGINS")
	})
}

func TestDataDirCandidates(t *testing.T) {
	cwd := t.TempDir()
	chdir(t, cwd)

	candidates := CatalogConfig{}.DataDirCandidates()
	require.NotEmpty(t, candidates)
	assert.Equal(t, filepath.Join(cwd, "data"), candidates[0])
	assert.Contains(t, candidates, "/var/task/data")
	assert.Equal(t, filepath.Join(cwd, "..", "..", "data"), candidates[len(candidates)-1])

	explicit := CatalogConfig{DataDir: "/srv/catalog"}.DataDirCandidates()
	assert.Equal(t, "/srv/catalog", explicit[0])
	assert.Len(t, explicit, len(candidates)+1)
}

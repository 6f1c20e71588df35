package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Makepad-fr/liser/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LISER_URL", "LISER_BAGLIST", "LISER_THEME", "LISER_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISER_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Zero(t, cfg.Timeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("LISER_HOME", dir)

	yml := `base_url: https://liser.example.com/
baglist_id: bl-1
theme: neon
log_level: debug
timeout: 5s
endpoints:
  delete_section: /custom/delete/
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://liser.example.com", cfg.BaseURL)
	assert.Equal(t, "bl-1", cfg.BagListID)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/custom/delete/", cfg.Endpoints["delete_section"])

	t.Setenv("LISER_BAGLIST", "bl-2")
	t.Setenv("LISER_URL", "http://127.0.0.1:9000/")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "bl-2", cfg.BagListID)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("base_url: [unterminated"), 0o644))

	_, err := config.LoadFile(p)
	assert.Error(t, err)
}

func TestLevel_UnknownFallsBackToInfo(t *testing.T) {
	cfg := config.Config{LogLevel: "chatty"}
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metalagman/todolist/internal/todo"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	t.Parallel()

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
}

func TestLoad_UsesYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todolist.yaml")
	writeFile(t, path, `default_filter: in-progress
web:
  addr: 127.0.0.1:9000
  shutdown_timeout: 2s
render:
  style: notty
  width: 60
`)

	cfg, err := Load(viper.New(), path, true)
	require.NoError(t, err)
	assert.Equal(t, todo.FilterInProgress, cfg.DefaultFilter)
	assert.Equal(t, "127.0.0.1:9000", cfg.Web.Addr)
	assert.Equal(t, 2*time.Second, cfg.Web.ShutdownTimeout)
	assert.True(t, cfg.TUI.AltScreen, "unset keys keep defaults")
	assert.Equal(t, StyleNoTTY, cfg.Render.Style)
	assert.Equal(t, 60, cfg.Render.Width)
}

func TestLoad_UsesJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todolist.json")
	writeFile(t, path, `{"default_filter": "completed", "tui": {"alt_screen": false}}`)

	cfg, err := Load(viper.New(), path, true)
	require.NoError(t, err)
	assert.Equal(t, todo.FilterCompleted, cfg.DefaultFilter)
	assert.False(t, cfg.TUI.AltScreen)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown filter":  "default_filter: archived\n",
		"unknown key":     "colour: blue\n",
		"bad timeout":     "web:\n  shutdown_timeout: soon\n",
		"negative width":  "render:\n  width: -1\n",
		"bad style":       "render:\n  style: neon\n",
		"alt screen type": "tui:\n  alt_screen: maybe\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "todolist.yaml")
			writeFile(t, path, content)

			_, err := Load(viper.New(), path, true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config schema validation failed")
		})
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolist.yaml")
	writeFile(t, path, "web:\n  addr: \":9000\"\n")
	t.Setenv("TODOLIST_WEB_ADDR", ":7000")
	t.Setenv("TODOLIST_DEFAULT_FILTER", "completed")

	cfg, err := Load(viper.New(), path, true)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Web.Addr)
	assert.Equal(t, todo.FilterCompleted, cfg.DefaultFilter)
}

func TestLoad_RejectsInvalidEnvironmentFilter(t *testing.T) {
	t.Setenv("TODOLIST_DEFAULT_FILTER", "someday")

	_, err := Load(viper.New(), "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_filter")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")), "missing file is not an error")

	path := filepath.Join(dir, ".env")
	writeFile(t, path, "TODOLIST_DOTENV_PROBE=loaded\n")
	t.Cleanup(func() { _ = os.Unsetenv("TODOLIST_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TODOLIST_DOTENV_PROBE"))
}

func TestValidateSettings_AcceptsDefaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateSettings(DefaultSettings()))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Web.ShutdownTimeout = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Render.Style = "sepia"
	require.Error(t, cfg.Validate())
}

func TestValidateSettings_ReportsFields(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings["default_filter"] = "someday"
	settings["render"] = map[string]any{"style": "neon", "width": 10}

	err := ValidateSettings(settings)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Len(t, schemaErr.Violations, 2)
	assert.Contains(t, schemaErr.Violations[0], "default_filter")
	assert.Contains(t, schemaErr.Violations[1], "render.style")
}

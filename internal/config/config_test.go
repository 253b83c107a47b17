package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config dir at an empty temp dir and runs from there.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	t.Setenv(EnvConfig, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, PrefsFileName), cfg.PrefsFile)
	assert.Equal(t, "auto", cfg.ColorScheme)
	assert.Equal(t, SplashAuto, cfg.Splash)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Locale.FollowSystem)
	assert.Empty(t, cfg.Engine.Command)
	assert.Zero(t, cfg.Engine.ReadyTimeout)
	assert.Empty(t, cfg.Path())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := isolate(t)
	body := `color_scheme: Dark
splash: "off"
locale:
  follow_system: true
engine:
  command: ["my-app", "--fullscreen"]
  ready_timeout: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feurboot.yaml"), []byte(body), 0600))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.ColorScheme)
	assert.Equal(t, SplashOff, cfg.Splash)
	assert.True(t, cfg.Locale.FollowSystem)
	assert.Equal(t, []string{"my-app", "--fullscreen"}, cfg.Engine.Command)
	assert.Equal(t, 5*time.Second, cfg.Engine.ReadyTimeout)
	assert.Equal(t, filepath.Join(dir, "feurboot.yaml"), cfg.Path())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feurboot.json"), []byte(`{"color_scheme":"light"}`), 0600))
	t.Setenv("FEURBOOT_COLOR_SCHEME", "dark")
	t.Setenv("FEURBOOT_ENGINE_READY_TIMEOUT", "250ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.ColorScheme)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.ReadyTimeout)
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prefs_file":"/tmp/prefs.json"}`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/prefs.json", cfg.PrefsFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{ColorScheme: "sepia", Splash: "maybe", LogLevel: "loud"}
	cfg.Engine.ReadyTimeout = -time.Second

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"color_scheme", "splash", "log_level", "engine.ready_timeout"}, fields)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

// TestSaveConfigPermissions verifies SaveConfig writes with 0600 permissions.
func TestSaveConfigPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "feurboot.json")

	cfg := &Config{ColorScheme: "dark", Splash: SplashOn}
	require.NoError(t, cfg.SaveConfig(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Config
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "dark", got.ColorScheme)
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	assert.NotEmpty(t, GetConfigDir())

	t.Setenv(EnvConfigDir, "/opt/feurboot")
	assert.Equal(t, "/opt/feurboot", GetConfigDir())
}

func TestValidationErrorsEmpty(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}

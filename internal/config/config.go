package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ---------------------------------------------------------------------------
// Environment variable constants
// ---------------------------------------------------------------------------

const (
	EnvPrefix    = "FEURBOOT"
	EnvConfig    = "FEURBOOT_CONFIG"     // path to custom config file
	EnvConfigDir = "FEURBOOT_CONFIG_DIR" // path to custom config dir
)

// Splash modes.
const (
	SplashAuto = "auto"
	SplashOn   = "on"
	SplashOff  = "off"
)

// PrefsFileName is the default preferences file inside the config dir.
const PrefsFileName = "shared_preferences.json"

// Config holds all configuration for feurboot.
type Config struct {
	// Persisted preferences written by the application.
	PrefsFile string `mapstructure:"prefs_file" json:"prefs_file,omitempty"`

	// Source of the system dark signal: auto | dark | light.
	ColorScheme string `mapstructure:"color_scheme" json:"color_scheme"`

	// DEBUG | INFO | WARN | ERROR
	LogLevel string `mapstructure:"log_level" json:"log_level,omitempty"`

	// auto | on | off
	Splash string `mapstructure:"splash" json:"splash"`

	Locale LocaleConfig `mapstructure:"locale" json:"locale"`
	Engine EngineConfig `mapstructure:"engine" json:"engine"`

	// File the config was read from (not serialized).
	path string
}

// LocaleConfig controls locale detection.
type LocaleConfig struct {
	// Use the OS locale when none is stored.
	FollowSystem bool `mapstructure:"follow_system" json:"follow_system"`
}

// EngineConfig describes the application the bootstrap hands off to.
type EngineConfig struct {
	Command []string `mapstructure:"command" json:"command,omitempty"`
	Dir     string   `mapstructure:"dir" json:"dir,omitempty"`
	// Zero means bring-up may take as long as it needs.
	ReadyTimeout time.Duration `mapstructure:"ready_timeout" json:"ready_timeout,omitempty"`
}

// Load loads configuration with precedence:
// defaults → config file → FEURBOOT_* environment.
// path selects an explicit config file; when empty, $FEURBOOT_CONFIG is used,
// then feurboot.{json,yaml,toml} is searched in the config dir and cwd.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("prefs_file", filepath.Join(GetConfigDir(), PrefsFileName))
	v.SetDefault("color_scheme", "auto")
	v.SetDefault("log_level", "info")
	v.SetDefault("splash", SplashAuto)
	v.SetDefault("locale.follow_system", false)
	v.SetDefault("engine.command", []string{})
	v.SetDefault("engine.dir", "")
	v.SetDefault("engine.ready_timeout", time.Duration(0))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("feurboot")
		v.AddConfigPath(GetConfigDir())
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.path = v.ConfigFileUsed()
	cfg.ColorScheme = strings.ToLower(strings.TrimSpace(cfg.ColorScheme))
	cfg.Splash = strings.ToLower(strings.TrimSpace(cfg.Splash))
	return &cfg, nil
}

// Path returns the config file that was read, or "" when only defaults and
// environment were used.
func (c *Config) Path() string { return c.path }

// GetConfigDir returns the feurboot config directory
func GetConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feurboot"
	}
	return filepath.Join(home, ".config", "feurboot")
}

// SaveConfig writes the config to a JSON file
func (c *Config) SaveConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// String renders the config as indented JSON.
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}

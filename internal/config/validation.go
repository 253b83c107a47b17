package config

import (
	"fmt"
	"strings"

	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors ValidationErrors

	switch c.ColorScheme {
	case theme.SchemeAuto, theme.SchemeDark, theme.SchemeLight:
	default:
		errors = append(errors, ValidationError{
			Field:   "color_scheme",
			Message: fmt.Sprintf("unknown color scheme '%s', valid: auto, dark, light", c.ColorScheme),
		})
	}

	switch c.Splash {
	case SplashAuto, SplashOn, SplashOff:
	default:
		errors = append(errors, ValidationError{
			Field:   "splash",
			Message: fmt.Sprintf("unknown splash mode '%s', valid: auto, on, off", c.Splash),
		})
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("unknown level '%s', valid: debug, info, warn, error", c.LogLevel),
		})
	}

	if c.Engine.ReadyTimeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "engine.ready_timeout",
			Message: "must be non-negative",
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// GetConfigPrecedence returns a description of config source precedence
func GetConfigPrecedence() string {
	return `Configuration is loaded in the following order (later sources override earlier):

1. Built-in defaults
2. Config file (--config, $FEURBOOT_CONFIG, ~/.config/feurboot/feurboot.* or ./feurboot.*)
3. Environment variables (FEURBOOT_COLOR_SCHEME, FEURBOOT_ENGINE_READY_TIMEOUT, etc.)
4. Command-line flags (--prefs, --color-scheme, --log-level)
`
}

// Package log is the diagnostic channel for the bootstrap. Everything goes to
// stderr so it never interleaves with the splash screen drawn on stdout.
package log

import (
	"io"
	"os"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logger handed to bootstrap components.
type Logger = charmlog.Logger

// Level is a logging level.
type Level = charmlog.Level

// Level constants matching charmbracelet/log levels.
const (
	LevelDebug = charmlog.DebugLevel
	LevelInfo  = charmlog.InfoLevel
	LevelWarn  = charmlog.WarnLevel
	LevelError = charmlog.ErrorLevel
)

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the shared stderr logger.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr)
		defaultLogger.SetLevel(LevelInfo)
	})
	return defaultLogger
}

// New builds a logger writing to w with the feurboot prefix.
func New(w io.Writer) *Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Prefix:          "feurboot",
		ReportTimestamp: false,
	})
}

// Or returns l, or the default logger when l is nil.
func Or(l *Logger) *Logger {
	if l == nil {
		return Default()
	}
	return l
}

// SetLevel sets the level of the shared logger.
func SetLevel(l Level) {
	Default().SetLevel(l)
}

// GetLevel returns the level of the shared logger.
func GetLevel() Level {
	return Default().GetLevel()
}

// ParseLevel maps debug|info|warn|error (any case) to a level.
// An empty string means info.
func ParseLevel(s string) (Level, error) {
	if strings.TrimSpace(s) == "" {
		return LevelInfo, nil
	}
	return charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

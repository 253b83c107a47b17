package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colour scheme settings for the system dark-mode signal.
const (
	SchemeAuto  = "auto"
	SchemeDark  = "dark"
	SchemeLight = "light"
)

// TerminalDark reports whether the terminal background is dark. lipgloss
// queries the terminal once and caches the answer.
func TerminalDark() bool {
	return lipgloss.HasDarkBackground()
}

// Forced returns a signal that always reports the given value.
func Forced(dark bool) func() bool {
	return func() bool { return dark }
}

// Pin presets the terminal background answer so neither lipgloss nor
// bubbletea sends the OSC 11 query.
func Pin(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// SignalFor maps a colour scheme setting to a system dark signal. Forced
// schemes also pin the terminal answer.
func SignalFor(scheme string) (func() bool, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeAuto:
		return TerminalDark, nil
	case SchemeDark:
		Pin(true)
		return Forced(true), nil
	case SchemeLight:
		Pin(false)
		return Forced(false), nil
	default:
		return nil, fmt.Errorf("unknown color scheme %q (want auto, dark or light)", scheme)
	}
}

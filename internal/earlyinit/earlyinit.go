// Package earlyinit must be imported before github.com/charmbracelet/bubbletea
// in cmd/feurboot/main.go. When FEURBOOT_COLOR_SCHEME forces a scheme, its
// init function pre-sets lipgloss's dark-background flag so that bubbletea's
// own init finds the value already cached and skips the OSC 11 terminal
// colour query. With "auto" (or unset) the query runs as usual and becomes
// the system dark signal.
package earlyinit

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvColorScheme is read before any flag or config file is parsed.
const EnvColorScheme = "FEURBOOT_COLOR_SCHEME"

// Pinned reports whether init pinned the terminal background.
var Pinned bool

func init() {
	Pinned = pin(os.Getenv(EnvColorScheme))
}

func pin(scheme string) bool {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return true
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return true
	}
	return false
}

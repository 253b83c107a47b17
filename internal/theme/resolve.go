package theme

import (
	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/storage"
)

// Source records which rule produced a Resolution.
type Source string

const (
	SourcePreference Source = "preference"
	SourceSystem     Source = "system"
	SourceFallback   Source = "fallback"
)

// Resolution is a resolved mode plus where it came from.
type Resolution struct {
	Mode   Mode
	Source Source
	// Err is the decode failure behind a fallback resolution.
	Err error
}

// Resolve picks the mode for a decoded preference. Rules, first match wins:
//
//   - malformed preference: Light (fallback)
//   - theme_mode present and truthy: Dark
//   - theme_mode present and falsy: Light, the system signal is not consulted
//   - no preference or no theme_mode: Dark if systemDark reports true
//
// systemDark is only called when the last rule applies. A nil systemDark
// reports false.
func Resolve(d Decoded, systemDark func() bool) Resolution {
	if d.Kind == Malformed {
		return Resolution{Mode: Light, Source: SourceFallback, Err: d.Err}
	}

	if v, ok := d.Field(FieldThemeMode); ok {
		if truthy(v) {
			return Resolution{Mode: Dark, Source: SourcePreference}
		}
		return Resolution{Mode: Light, Source: SourcePreference}
	}

	if systemDark != nil && systemDark() {
		return Resolution{Mode: Dark, Source: SourceSystem}
	}
	return Resolution{Mode: Light, Source: SourceSystem}
}

// Resolver reads the stored theme preference and resolves it.
type Resolver struct {
	Store      storage.Store
	SystemDark func() bool
	Logger     *log.Logger
}

// NewResolver creates a Resolver. A nil store behaves as an empty one.
func NewResolver(store storage.Store, systemDark func() bool, logger *log.Logger) *Resolver {
	return &Resolver{Store: store, SystemDark: systemDark, Logger: logger}
}

// Resolve reads the preference key once and resolves it. It never fails:
// unreadable preferences log a diagnostic and resolve to Light.
func (r *Resolver) Resolve() Resolution {
	store := r.Store
	if store == nil {
		store = storage.Empty
	}
	logger := log.Or(r.Logger)

	raw, ok := store.Get(storage.KeyThemePreferences)
	res := Resolve(Decode(raw, ok), r.SystemDark)

	if res.Source == SourceFallback {
		logger.Error("could not read theme preference", "key", storage.KeyThemePreferences, "err", res.Err)
		logger.Warn("falling back to default theme", "mode", res.Mode)
		return res
	}
	logger.Debug("theme resolved", "mode", res.Mode, "source", res.Source)
	return res
}

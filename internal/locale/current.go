package locale

import (
	"encoding/json"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/storage"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

// Normalize maps a locale string such as "fr", "fr-FR" or "fr_CA" to a
// supported Locale.
func Normalize(code string) (Locale, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	if _, ok := table[Locale(code)]; ok {
		return Locale(code), true
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return Supported()[idx], true
}

// Detector works out the active locale.
type Detector struct {
	Store storage.Store
	// FollowSystem uses the OS locale when nothing is stored.
	FollowSystem bool
	// System lists OS locales, most preferred first. Defaults to go-locale.
	System func() ([]string, error)
	Logger *log.Logger
}

// Current reads the stored locale once and returns it, or Default.
func Current(store storage.Store, logger *log.Logger) Locale {
	d := &Detector{Store: store, Logger: logger}
	return d.Current()
}

// Current implements the lookup. Unreadable or unsupported values log a
// diagnostic and yield Default.
func (d *Detector) Current() Locale {
	logger := log.Or(d.Logger)
	store := d.Store
	if store == nil {
		store = storage.Empty
	}

	raw, ok := store.Get(storage.KeyLocale)
	if !ok || raw == "" {
		return d.fallback(logger)
	}

	var code string
	if err := json.Unmarshal([]byte(raw), &code); err != nil {
		logger.Error("could not parse saved locale", "key", storage.KeyLocale, "err", err)
		return Default
	}
	l, ok := Normalize(code)
	if !ok {
		logger.Error("unsupported saved locale", "key", storage.KeyLocale, "locale", code)
		return Default
	}
	return l
}

func (d *Detector) fallback(logger *log.Logger) Locale {
	if !d.FollowSystem {
		return Default
	}
	system := d.System
	if system == nil {
		system = golocale.GetLocales
	}
	codes, err := system()
	if err != nil {
		logger.Warn("could not detect system locale", "err", err)
		return Default
	}
	for _, c := range codes {
		if l, ok := Normalize(c); ok {
			logger.Debug("using system locale", "locale", l)
			return l
		}
	}
	return Default
}

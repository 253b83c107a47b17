// Package locale holds the baked-in bootstrap strings and works out which
// locale the user last picked.
package locale

import (
	"errors"
	"fmt"
)

// Locale is a supported locale code.
type Locale string

const (
	EN Locale = "en"
	FR Locale = "fr"
)

// Default is used whenever nothing usable is stored.
const Default = EN

// Key names one of the bootstrap strings.
type Key string

const (
	Message    Key = "message"
	Loading    Key = "loading"
	RunningApp Key = "runningApp"
	InitApp    Key = "initApp"
)

var (
	ErrUnknownLocale  = errors.New("unknown locale")
	ErrUnknownMessage = errors.New("unknown message")
)

var table = map[Locale]map[Key]string{
	EN: {
		Message:    "Connecting you to the world...",
		Loading:    "Loading ...",
		RunningApp: "Running app ...",
		InitApp:    "Initializing engine ...",
	},
	FR: {
		Message:    "En train de te connecter au monde...",
		Loading:    "Chargement ...",
		RunningApp: "Lancement de l'app ...",
		InitApp:    "Intilisation du moteur ...",
	},
}

// Supported lists the locales in the table.
func Supported() []Locale {
	return []Locale{EN, FR}
}

// Keys lists the message keys in display order.
func Keys() []Key {
	return []Key{Message, Loading, InitApp, RunningApp}
}

// Lookup returns the string for key in l.
func Lookup(l Locale, key Key) (string, error) {
	msgs, ok := table[l]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, l)
	}
	msg, ok := msgs[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMessage, key)
	}
	return msg, nil
}

// MustLookup is Lookup for keys known to exist. Unknown locales fall back to
// the default table.
func MustLookup(l Locale, key Key) string {
	if msg, err := Lookup(l, key); err == nil {
		return msg
	}
	msg, err := Lookup(Default, key)
	if err != nil {
		panic(err)
	}
	return msg
}

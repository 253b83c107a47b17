package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// File is a Store backed by a flat JSON preferences file, the layout
// shared_preferences uses on desktop:
//
//	{"adaptive_theme_preferences": "{\"theme_mode\":1}", "flutter.feur_saved_locale": "\"fr\""}
//
// Keys contain dots, so viper runs with a "::" key delimiter to keep them flat.
type File struct {
	path string
	v    *viper.Viper
}

// OpenFile loads the preferences file at path. A missing file yields an
// empty store; absent preferences are a normal state, not an error.
func OpenFile(path string) (*File, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	f := &File{path: path, v: v}
	if path == "" {
		return f, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("stat preferences file: %w", err)
	}

	v.SetConfigFile(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "json"
	}
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read preferences file %s: %w", path, err)
	}
	return f, nil
}

// Path returns the file this store was opened from.
func (f *File) Path() string { return f.path }

// Get implements Store. Non-string values are handed back JSON-encoded so
// callers always see the string form the application would have stored.
func (f *File) Get(key string) (string, bool) {
	if !f.v.IsSet(key) {
		return "", false
	}
	switch val := f.v.Get(key).(type) {
	case nil:
		return "", false
	case string:
		return val, true
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}

// Keys lists the keys present in the file.
func (f *File) Keys() []string {
	return f.v.AllKeys()
}

package theme

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FieldThemeMode is the preference field holding the user's choice.
const FieldThemeMode = "theme_mode"

// DecodeKind tags the outcome of decoding a stored preference.
type DecodeKind int

const (
	// Absent means nothing usable was stored.
	Absent DecodeKind = iota
	// Object means the preference decoded to a JSON object (possibly empty).
	Object
	// Malformed means the stored value could not be decoded.
	Malformed
)

func (k DecodeKind) String() string {
	switch k {
	case Object:
		return "object"
	case Malformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Decoded is the result of Decode. Fields is set for Object, Err for Malformed.
type Decoded struct {
	Kind   DecodeKind
	Fields map[string]any
	Err    error
}

// Field returns the named field and whether it is present.
func (d Decoded) Field(name string) (any, bool) {
	if d.Kind != Object || d.Fields == nil {
		return nil, false
	}
	v, ok := d.Fields[name]
	return v, ok
}

var (
	errNullPreference  = errors.New("preference decoded to null")
	errArrayPreference = errors.New("preference decoded to an array")
)

// Decode turns a stored preference into a Decoded value.
//
// The persistence layer sometimes stores the object JSON-encoded twice, so a
// first decode yielding a string is decoded exactly once more. Scalars that
// are not strings decode to an object without fields.
func Decode(raw string, present bool) Decoded {
	if !present || raw == "" {
		return Decoded{Kind: Absent}
	}

	var first any
	if err := json.Unmarshal([]byte(raw), &first); err != nil {
		return Decoded{Kind: Malformed, Err: fmt.Errorf("decode preference: %w", err)}
	}

	switch v := first.(type) {
	case map[string]any:
		return Decoded{Kind: Object, Fields: v}
	case string:
		var second any
		if err := json.Unmarshal([]byte(v), &second); err != nil {
			return Decoded{Kind: Malformed, Err: fmt.Errorf("decode inner preference: %w", err)}
		}
		fields, _ := second.(map[string]any)
		return Decoded{Kind: Object, Fields: fields}
	case nil:
		return Decoded{Kind: Malformed, Err: errNullPreference}
	case []any:
		return Decoded{Kind: Malformed, Err: errArrayPreference}
	default:
		return Decoded{Kind: Object}
	}
}

// truthy applies JavaScript truthiness to a decoded JSON value.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// Package codec encodes icon selectors as JSON and MessagePack.
//
// A selector is externally tagged: a single-key map from the arm name to the
// payload. Curated icons carry their canonical identifier, custom icons carry
// every field, with absent attributes as null:
//
//	{"Ai": "AiFileImageTwotone"}
//	{"Custom": {"style": null, ..., "fill": null, "data": "<path d=\"M0 0\"/>"}}
//
// MessagePack uses the same shape. A nil selector encodes as null.
//
// Decoding resolves names through icondata.Parse, so only sets enabled in
// the decoding build can be read back. Encoding is gated the same way: a
// curated icon of a set not enabled in the encoding build fails with
// icondata.ErrSetDisabled.
package codec

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pthm/icondata"
)

// ErrInvalidFormat is returned for input that is not an encoded selector.
var ErrInvalidFormat = errors.New("icondata: invalid icon encoding")

// dataKey is the only field a custom icon payload must carry.
const dataKey = "data"

// Value wraps an icon so it can be embedded in structs encoded with
// encoding/json or msgpack.
//
//	type Button struct {
//	    Label string     `json:"label"`
//	    Icon  codec.Value `json:"icon"`
//	}
type Value struct {
	Icon icondata.Icon
}

// Wrap returns icon as a Value.
func Wrap(icon icondata.Icon) Value {
	return Value{Icon: icon}
}

// payload returns what an icon encodes as under its arm tag. Curated icons
// encode only when their set is enabled, as only those decode again.
func payload(icon icondata.Icon) (any, error) {
	if v, ok := icon.(icondata.CustomIcon); ok {
		return v, nil
	}
	switch set := icon.Set(); {
	case !set.Valid() || set == icondata.Custom:
		return nil, fmt.Errorf("%w: %T reports %s", icondata.ErrUnknownSet, icon, set)
	case !icondata.IsEnabled(set):
		return nil, fmt.Errorf("%w: %s", icondata.ErrSetDisabled, set)
	}
	switch v := icon.(type) {
	case encoding.TextMarshaler:
		name, err := v.MarshalText()
		if err != nil {
			return nil, err
		}
		return string(name), nil
	default:
		return nil, fmt.Errorf("icondata: %T has no canonical name", icon)
	}
}

// parseTag resolves the arm tag of an encoded selector.
func parseTag(tag string) (icondata.Set, error) {
	set, err := icondata.ParseSet(tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return set, nil
}

// MarshalJSON encodes icon as a JSON selector.
func MarshalJSON(icon icondata.Icon) ([]byte, error) {
	if icon == nil {
		return []byte("null"), nil
	}
	p, err := payload(icon)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any{icon.Set().String(): p}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a JSON selector.
func UnmarshalJSON(b []byte) (icondata.Icon, error) {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil, nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(b, &tagged); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("%w: want exactly one arm, got %d", ErrInvalidFormat, len(tagged))
	}

	for tag, raw := range tagged {
		set, err := parseTag(tag)
		if err != nil {
			return nil, err
		}
		if set == icondata.Custom {
			return unmarshalCustomJSON(raw)
		}

		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, fmt.Errorf("%w: %s payload: %w", ErrInvalidFormat, set, err)
		}
		return icondata.Parse(set, name)
	}
	panic("unreachable")
}

func unmarshalCustomJSON(raw json.RawMessage) (icondata.Icon, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: Custom payload: %w", ErrInvalidFormat, err)
	}
	if d, ok := fields[dataKey]; !ok || bytes.Equal(d, []byte("null")) {
		return nil, fmt.Errorf("%w: Custom payload has no %s", ErrInvalidFormat, dataKey)
	}

	var c icondata.CustomIcon
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: Custom payload: %w", ErrInvalidFormat, err)
	}
	return c, nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return MarshalJSON(v.Icon)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	icon, err := UnmarshalJSON(b)
	if err != nil {
		return err
	}
	v.Icon = icon
	return nil
}

package core

import (
	"encoding/json"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Attr is an optional SVG attribute value.
//
// The zero Attr is absent. Value("") is present but empty, and renderers
// must keep the two apart: absent attributes are elided from the emitted
// markup, empty ones are written as attr="".
//
// Attr is comparable, so records built from it compare with ==.
type Attr struct {
	value string
	set   bool
}

// Value returns a present attribute holding s.
func Value(s string) Attr {
	return Attr{value: s, set: true}
}

// Get returns the value and whether the attribute is present.
func (a Attr) Get() (string, bool) {
	return a.value, a.set
}

// IsSet reports whether the attribute is present.
func (a Attr) IsSet() bool {
	return a.set
}

// Or returns the value, or def when the attribute is absent.
func (a Attr) Or(def string) string {
	if !a.set {
		return def
	}
	return a.value
}

// String returns the value, or "" when the attribute is absent.
func (a Attr) String() string {
	return a.value
}

// Compare orders absent before present, then present values by byte order.
func (a Attr) Compare(b Attr) int {
	switch {
	case a.set == b.set:
		if !a.set {
			return 0
		}
		return strings.Compare(a.value, b.value)
	case !a.set:
		return -1
	default:
		return 1
	}
}

// MarshalJSON encodes an absent attribute as null.
func (a Attr) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON decodes null as absent and a string as present.
func (a *Attr) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Attr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a = Value(s)
	return nil
}

var (
	_ msgpack.CustomEncoder = Attr{}
	_ msgpack.CustomDecoder = (*Attr)(nil)
)

// EncodeMsgpack encodes an absent attribute as nil.
func (a Attr) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !a.set {
		return enc.EncodeNil()
	}
	return enc.EncodeString(a.value)
}

// DecodeMsgpack decodes nil as absent and a string as present.
func (a *Attr) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if c == msgpcode.Nil {
		*a = Attr{}
		return dec.DecodeNil()
	}
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*a = Value(s)
	return nil
}

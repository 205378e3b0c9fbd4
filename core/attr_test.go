package core

import (
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestAttrPresence(t *testing.T) {
	var absent Attr
	empty := Value("")
	full := Value("0 0 24 24")

	if absent.IsSet() {
		t.Error("zero Attr should be absent")
	}
	if !empty.IsSet() {
		t.Error(`Value("") should be present`)
	}
	if absent == empty {
		t.Error("absent and present-but-empty must differ")
	}
	if v, ok := full.Get(); !ok || v != "0 0 24 24" {
		t.Errorf("Get() = %q, %v, want %q, true", v, ok, "0 0 24 24")
	}
	if got := absent.Or("none"); got != "none" {
		t.Errorf("Or() on absent = %q, want %q", got, "none")
	}
	if got := empty.Or("none"); got != "" {
		t.Errorf("Or() on empty = %q, want %q", got, "")
	}
}

func TestAttrCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Attr
		want int
	}{
		{"both absent", Attr{}, Attr{}, 0},
		{"absent before empty", Attr{}, Value(""), -1},
		{"present after absent", Value("a"), Attr{}, 1},
		{"lexicographic", Value("a"), Value("b"), -1},
		{"equal values", Value("x"), Value("x"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAttrJSON(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		json string
	}{
		{"absent", Attr{}, `null`},
		{"empty", Value(""), `""`},
		{"value", Value("currentColor"), `"currentColor"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.attr)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(b) != tt.json {
				t.Errorf("Marshal() = %s, want %s", b, tt.json)
			}

			decoded := Value("sentinel")
			if err := json.Unmarshal(b, &decoded); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if decoded != tt.attr {
				t.Errorf("Unmarshal() = %#v, want %#v", decoded, tt.attr)
			}
		})
	}
}

func TestAttrJSONRejectsNonString(t *testing.T) {
	var a Attr
	if err := json.Unmarshal([]byte(`42`), &a); err == nil {
		t.Error("expected error for non-string attribute")
	}
}

func TestAttrMsgpack(t *testing.T) {
	for _, attr := range []Attr{{}, Value(""), Value("round")} {
		b, err := msgpack.Marshal(attr)
		if err != nil {
			t.Fatalf("Marshal(%#v) failed: %v", attr, err)
		}
		decoded := Value("sentinel")
		if err := msgpack.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("Unmarshal(%#v) failed: %v", attr, err)
		}
		if decoded != attr {
			t.Errorf("round trip = %#v, want %#v", decoded, attr)
		}
	}
}

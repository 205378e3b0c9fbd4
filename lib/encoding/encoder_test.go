package encoding

import (
	"errors"
	"strings"
	"testing"

	"github.com/pthm/icondata"
)

var heart = icondata.CustomIcon{
	ViewBox: icondata.Value("0 0 24 24"),
	Fill:    icondata.Value("currentColor"),
	Data:    `<path d="M12 21l-8-8a5 5 0 0 1 8-6 5 5 0 0 1 8 6z"/>`,
}

func TestNewEncoder(t *testing.T) {
	// Any key length works.
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-longer-than-32-byte-key-for-aes")); err != nil {
		t.Fatalf("NewEncoder with long key failed: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	for _, sensitive := range []bool{false, true} {
		ref, err := enc.Encode(heart, sensitive)
		if err != nil {
			t.Fatalf("Encode(sensitive=%v) failed: %v", sensitive, err)
		}
		if strings.ContainsAny(ref, "+/=") {
			t.Errorf("reference %q is not URL-safe", ref)
		}
		if got := strings.Contains(ref, "."); got == sensitive {
			t.Errorf("sensitive=%v: separator present = %v", sensitive, got)
		}

		icon, err := enc.Decode(ref, sensitive)
		if err != nil {
			t.Fatalf("Decode(sensitive=%v) failed: %v", sensitive, err)
		}
		if icon != icondata.FromCustom(heart) {
			t.Errorf("Decode(sensitive=%v) = %v", sensitive, icon)
		}
	}
}

func TestEncodeNil(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	if _, err := enc.Encode(nil, false); err == nil {
		t.Error("expected error for nil icon")
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	ref, err := enc.Encode(heart, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	payload, _, _ := strings.Cut(ref, ".")
	forged, _ := enc.Encode(icondata.CustomIcon{Data: "<script/>"}, false)
	_, forgedSig, _ := strings.Cut(forged, ".")

	_, err = enc.Decode(payload+"."+forgedSig, false)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode(swapped signature) error = %v, want ErrSignatureInvalid", err)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	ref, err := enc.Encode(heart, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	other, _ := NewEncoder([]byte("other-key"))
	if _, err := other.Decode(ref, true); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("Decode with other key error = %v, want ErrDecryptFailed", err)
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	tests := []struct {
		name      string
		ref       string
		sensitive bool
	}{
		{"missing separator", "invalidbase64withoutseparator", false},
		{"bad payload", "!!!.AAAA", false},
		{"bad signature", "AAAA.!!!", false},
		{"bad ciphertext", "!!!", true},
		{"short ciphertext", "AAAA", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := enc.Decode(tt.ref, tt.sensitive); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidFormat", tt.ref, err)
			}
		})
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	ref, err := enc1.Encode(heart, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := enc2.Decode(ref, false); err == nil {
		t.Error("expected error when decoding with a different key")
	}
}

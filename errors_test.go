package icondata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrUnknownSet,
		ErrUnknownVariant,
		ErrSetDisabled,
		ErrNotEnumerable,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
		if !strings.HasPrefix(err1.Error(), "icondata:") {
			t.Errorf("Error %q should start with 'icondata:'", err1.Error())
		}
	}
}

func TestIsUnknown(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrUnknownSet", ErrUnknownSet, true},
		{"wrapped ErrUnknownVariant", fmt.Errorf("wrapped: %w", ErrUnknownVariant), true},
		{"wrapped ErrSetDisabled", fmt.Errorf("set Wi: %w", ErrSetDisabled), true},
		{"ErrNotEnumerable", ErrNotEnumerable, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsUnknown(tt.err)
			if result != tt.expect {
				t.Errorf("IsUnknown(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

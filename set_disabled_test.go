//go:build !Wi && !icondata_all

package icondata

import (
	"errors"
	"testing"
)

func TestDisabledSet(t *testing.T) {
	if IsEnabled(Wi) {
		t.Fatal("Wi enabled without its build tag")
	}

	_, err := Parse(Wi, "WiDaySunny")
	if !errors.Is(err, ErrSetDisabled) {
		t.Errorf("Parse(Wi) error = %v, want ErrSetDisabled", err)
	}
	if !IsUnknown(err) {
		t.Error("IsUnknown should cover disabled sets")
	}

	for icon := range Variants(Wi) {
		t.Errorf("Variants(Wi) yielded %v", icon)
	}
}

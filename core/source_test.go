package core

import "testing"

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{Source{Name: "Lucide", Version: "0.330.0", License: "ISC"}, "Lucide 0.330.0 (ISC)"},
		{Source{Name: "Feather", License: "MIT"}, "Feather (MIT)"},
		{Source{Name: "Local"}, "Local"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

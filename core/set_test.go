package core

import (
	"errors"
	"testing"
)

func TestSetString(t *testing.T) {
	tests := []struct {
		set  Set
		want string
		pkg  string
	}{
		{Ai, "Ai", "ai"},
		{Wi, "Wi", "wi"},
		{Custom, "Custom", ""},
		{Set(0), "Set(0)", ""},
		{Set(200), "Set(200)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.set.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.set.Package(); got != tt.pkg {
				t.Errorf("Package() = %q, want %q", got, tt.pkg)
			}
		})
	}
}

func TestSetsCatalogue(t *testing.T) {
	want := []string{"Ai", "Bi", "Bs", "Cg", "Ch", "Fa", "Fi", "Hi", "Im", "Io", "Lu", "Oc", "Ri", "Si", "Tb", "Ti", "Vs", "Wi"}
	sets := Sets()
	if len(sets) != len(want) {
		t.Fatalf("Sets() returned %d sets, want %d", len(sets), len(want))
	}
	for i, s := range sets {
		if s.String() != want[i] {
			t.Errorf("Sets()[%d] = %s, want %s", i, s, want[i])
		}
		if len(s.String()) != 2 {
			t.Errorf("prefix %q is not two characters", s)
		}
		if i > 0 && sets[i-1] >= s {
			t.Errorf("sets out of declaration order at %d", i)
		}
		if s >= Custom {
			t.Errorf("set %s does not order before Custom", s)
		}
	}
}

func TestParseSet(t *testing.T) {
	for _, s := range append(Sets(), Custom) {
		got, err := ParseSet(s.String())
		if err != nil {
			t.Fatalf("ParseSet(%q) failed: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseSet(%q) = %v, want %v", s, got, s)
		}
	}

	for _, name := range []string{"", "ai", "AI", "Zz", "custom"} {
		if _, err := ParseSet(name); !errors.Is(err, ErrUnknownSet) {
			t.Errorf("ParseSet(%q) error = %v, want ErrUnknownSet", name, err)
		}
	}
}

func TestSetText(t *testing.T) {
	b, err := Lu.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	var s Set
	if err := s.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if s != Lu {
		t.Errorf("round trip = %v, want Lu", s)
	}
	if _, err := Set(0).MarshalText(); !IsUnknown(err) {
		t.Errorf("MarshalText of invalid set error = %v, want unknown", err)
	}
}

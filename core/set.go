package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Set identifies an icon set by its two-character prefix. It is also the
// discriminant of the selector: selectors order by Set first, in the
// declaration order below.
type Set uint8

// Catalogued sets. New sets are appended before Custom in minor revisions.
const (
	Ai Set = iota + 1 // Ant Design Icons
	Bi                // BoxIcons
	Bs                // Bootstrap Icons
	Cg                // css.gg
	Ch                // Charm Icons
	Fa                // Font Awesome Free
	Fi                // Feather
	Hi                // Heroicons
	Im                // IcoMoon Free
	Io                // Ionicons
	Lu                // Lucide
	Oc                // Github Octicons
	Ri                // Remix Icon
	Si                // Simple Icons
	Tb                // Tabler Icons
	Ti                // Typicons
	Vs                // VS Code Icons
	Wi                // Weather Icons
)

// Custom is the arm of user-authored icons. It orders after every set.
const Custom Set = 255

var setNames = [...]string{
	Ai: "Ai",
	Bi: "Bi",
	Bs: "Bs",
	Cg: "Cg",
	Ch: "Ch",
	Fa: "Fa",
	Fi: "Fi",
	Hi: "Hi",
	Im: "Im",
	Io: "Io",
	Lu: "Lu",
	Oc: "Oc",
	Ri: "Ri",
	Si: "Si",
	Tb: "Tb",
	Ti: "Ti",
	Vs: "Vs",
	Wi: "Wi",
}

const customName = "Custom"

// Sets returns the catalogued sets in declaration order. Custom is not
// included.
func Sets() []Set {
	sets := make([]Set, 0, len(setNames)-1)
	for s := Ai; int(s) < len(setNames); s++ {
		sets = append(sets, s)
	}
	return sets
}

// Valid reports whether s is a catalogued set or Custom.
func (s Set) Valid() bool {
	return s == Custom || (s >= Ai && int(s) < len(setNames))
}

// String returns the prefix ("Ai") or "Custom".
func (s Set) String() string {
	switch {
	case s == Custom:
		return customName
	case s.Valid():
		return setNames[s]
	default:
		return "Set(" + strconv.Itoa(int(s)) + ")"
	}
}

// Package returns the lower-cased prefix used as the set's package name.
// Custom has no package and returns "".
func (s Set) Package() string {
	if s == Custom || !s.Valid() {
		return ""
	}
	return strings.ToLower(setNames[s])
}

// EnumName returns the name of the set's enumeration type ("AiIcon").
func (s Set) EnumName() string {
	if s == Custom {
		return "CustomIcon"
	}
	return s.String() + "Icon"
}

// ParseSet returns the set named by its prefix, or Custom for "Custom".
func ParseSet(name string) (Set, error) {
	if name == customName {
		return Custom, nil
	}
	for s := Ai; int(s) < len(setNames); s++ {
		if setNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSet, name)
}

// MarshalText encodes the set as its prefix.
func (s Set) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSet, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a prefix produced by MarshalText.
func (s *Set) UnmarshalText(b []byte) error {
	v, err := ParseSet(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

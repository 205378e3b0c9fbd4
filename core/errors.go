package core

import "errors"

// Sentinel errors for lookups by name.
var (
	ErrUnknownSet     = errors.New("icondata: unknown icon set")
	ErrUnknownVariant = errors.New("icondata: unknown icon")
)

// IsUnknown reports whether err is an unknown set or unknown icon error.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownSet) || errors.Is(err, ErrUnknownVariant)
}

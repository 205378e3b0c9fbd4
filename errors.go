package icondata

import (
	"errors"

	"github.com/pthm/icondata/core"
)

// Sentinel errors for name lookups.
var (
	// ErrUnknownSet is returned for a set that is not catalogued.
	ErrUnknownSet = core.ErrUnknownSet

	// ErrUnknownVariant is returned for a name a set does not declare.
	ErrUnknownVariant = core.ErrUnknownVariant

	// ErrSetDisabled is returned for a catalogued set whose build tag was
	// not given.
	ErrSetDisabled = errors.New("icondata: icon set not enabled in this build")

	// ErrNotEnumerable is returned when looking up custom icons by name.
	ErrNotEnumerable = errors.New("icondata: custom icons have no names")
)

// IsUnknown reports whether err means a set or icon name could not be
// resolved, including sets disabled in this build.
func IsUnknown(err error) bool {
	return core.IsUnknown(err) || errors.Is(err, ErrSetDisabled)
}

package icondata

import (
	"cmp"

	"github.com/pthm/icondata/core"
)

// IconData is the render record of a single SVG drawing.
type IconData = core.IconData

// Attr is an optional SVG attribute of a render record.
type Attr = core.Attr

// Source describes the upstream project of a curated set.
type Source = core.Source

// Set identifies an icon set by its two-character prefix.
type Set = core.Set

// Catalogued sets, in selector order.
const (
	Ai = core.Ai
	Bi = core.Bi
	Bs = core.Bs
	Cg = core.Cg
	Ch = core.Ch
	Fa = core.Fa
	Fi = core.Fi
	Hi = core.Hi
	Im = core.Im
	Io = core.Io
	Lu = core.Lu
	Oc = core.Oc
	Ri = core.Ri
	Si = core.Si
	Tb = core.Tb
	Ti = core.Ti
	Vs = core.Vs
	Wi = core.Wi

	Custom = core.Custom
)

// ParseSet returns the set named by its prefix, or Custom for "Custom".
func ParseSet(name string) (Set, error) {
	return core.ParseSet(name)
}

// Value returns a present attribute holding s.
func Value(s string) Attr {
	return core.Value(s)
}

// Icon selects any icon of any enabled set, or a user-authored one.
//
// The dynamic type is the arm: a per-set enumeration such as AiIcon, or
// CustomIcon. Each arm reports exactly one Set and carries its own
// projection to a render record.
//
// Icon is open to extension. Type switches over it must include a default
// branch so that sets added in later releases do not break them.
type Icon interface {
	// Set returns the arm discriminant.
	Set() Set

	// IconData projects the icon to its render record.
	IconData() IconData
}

// Data projects icon to its render record. A nil icon projects to the zero
// record.
func Data(icon Icon) IconData {
	if icon == nil {
		return IconData{}
	}
	return icon.IconData()
}

// As reports whether icon is of arm type T and returns the payload.
//
//	if v, ok := icondata.As[icondata.AiIcon](icon); ok {
//	    ...
//	}
func As[T Icon](icon Icon) (T, bool) {
	v, ok := icon.(T)
	return v, ok
}

// Compare orders icons by set (catalogue order, Custom last), then by
// payload: variant declaration order for curated sets, field by field for
// custom icons. nil orders before every icon.
//
// Declaration order holds whether or not the set is enabled in this build.
// Icons of other types that report a curated set compare by render record.
func Compare(a, b Icon) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if c := cmp.Compare(a.Set(), b.Set()); c != 0 {
		return c
	}

	if a.Set() == Custom {
		ca, okA := a.(CustomIcon)
		cb, okB := b.(CustomIcon)
		if okA && okB {
			return ca.Compare(cb)
		}
	} else {
		va, okA := a.(core.Variant)
		vb, okB := b.(core.Variant)
		if okA && okB {
			return cmp.Compare(va.Ordinal(), vb.Ordinal())
		}
	}
	return core.Compare(a.IconData(), b.IconData())
}

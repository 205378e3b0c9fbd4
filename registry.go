package icondata

import (
	"fmt"
	"iter"

	"github.com/pthm/icondata/core"
)

// arm describes one enabled set of the selector.
type arm struct {
	set    Set
	source Source
	parse  func(name string) (Icon, error)
	all    func() iter.Seq[Icon]
	len    int
}

// arms is indexed by Set. It is written only by init functions of the
// build-tag gated set_*.go files and is read-only afterwards.
var arms [256]*arm

// enumIcon is implemented by the generated per-set enumerations.
type enumIcon interface {
	Icon
	core.Variant
	~uint16
}

// registerEnum registers the arm of a generated set.
// Panics on a Custom or invalid set, or if the set is registered twice.
func registerEnum[T enumIcon](source Source, parse func(string) (T, error), all func() iter.Seq[T]) {
	var zero T
	set := zero.Set()

	n := 0
	for range all() {
		n++
	}

	register(&arm{
		set:    set,
		source: source,
		parse: func(name string) (Icon, error) {
			v, err := parse(name)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		all: func() iter.Seq[Icon] {
			return func(yield func(Icon) bool) {
				for v := range all() {
					if !yield(v) {
						return
					}
				}
			}
		},
		len: n,
	})
}

func register(a *arm) {
	if !a.set.Valid() || a.set == Custom {
		panic(fmt.Sprintf("icondata: cannot register arm for %s", a.set))
	}
	if arms[a.set] != nil {
		panic(fmt.Sprintf("icondata: set %s registered twice", a.set))
	}
	arms[a.set] = a
}

// Enabled returns the sets compiled into this build in selector order.
// Custom is always enabled and always last.
func Enabled() []Set {
	var sets []Set
	for _, set := range core.Sets() {
		if arms[set] != nil {
			sets = append(sets, set)
		}
	}
	return append(sets, Custom)
}

// IsEnabled reports whether set is compiled into this build.
func IsEnabled(set Set) bool {
	return set == Custom || arms[set] != nil
}

// SourceOf returns the upstream of an enabled curated set.
func SourceOf(set Set) (Source, bool) {
	if arm := arms[set]; arm != nil {
		return arm.source, true
	}
	return Source{}, false
}

// Len returns the number of icons in an enabled curated set, or zero.
func Len(set Set) int {
	if arm := arms[set]; arm != nil {
		return arm.len
	}
	return 0
}

// Parse returns the icon of set with the given canonical identifier.
//
// It fails with ErrUnknownSet for an invalid set, ErrSetDisabled for a set
// not compiled into this build, ErrNotEnumerable for Custom and
// ErrUnknownVariant for a name the set does not declare.
func Parse(set Set, name string) (Icon, error) {
	switch {
	case set == Custom:
		return nil, ErrNotEnumerable
	case !set.Valid():
		return nil, fmt.Errorf("%w: %s", ErrUnknownSet, set)
	}
	arm := arms[set]
	if arm == nil {
		return nil, fmt.Errorf("%w: %s", ErrSetDisabled, set)
	}
	return arm.parse(name)
}

// Variants yields every icon of an enabled curated set in declaration
// order. It yields nothing for Custom or a disabled set.
func Variants(set Set) iter.Seq[Icon] {
	arm := arms[set]
	if arm == nil {
		return func(func(Icon) bool) {}
	}
	return arm.all()
}

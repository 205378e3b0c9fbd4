package core

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
)

// Variant is implemented by the generated per-set enumerations. Ordinal
// is the variant's position in declaration order; two variants of one set
// compare by it.
type Variant interface {
	Set() Set
	Ordinal() int
}

// Table backs a generated per-set enumeration T. It maps each variant to
// its canonical name and pre-baked render record.
//
// Tables are built once from package-level arrays in generated code and
// are read-only afterwards; they are safe for concurrent use. Generated
// packages keep their table unexported, so consumers only ever see the
// methods on T.
type Table[T ~uint16] struct {
	set   Set
	names []string
	data  []IconData
}

// NewTable creates the table for set. names must be sorted and unique, as
// generated code declares variants in identifier order, and data must be
// parallel to names. NewTable panics otherwise: a malformed table is a
// generator bug, not a runtime condition.
func NewTable[T ~uint16](set Set, names []string, data []IconData) *Table[T] {
	if !set.Valid() || set == Custom {
		panic(fmt.Sprintf("icondata: invalid set %v for table", set))
	}
	if len(names) != len(data) {
		panic(fmt.Sprintf("icondata: %s table has %d names and %d records", set, len(names), len(data)))
	}
	if !slices.IsSorted(names) {
		panic(fmt.Sprintf("icondata: %s table names are not sorted", set))
	}
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			panic(fmt.Sprintf("icondata: %s table has duplicate icon %q", set, names[i]))
		}
	}
	return &Table[T]{set: set, names: names, data: data}
}

// Set returns the set the table belongs to.
func (t *Table[T]) Set() Set {
	return t.set
}

// Len returns the number of variants.
func (t *Table[T]) Len() int {
	return len(t.names)
}

// Valid reports whether v is a declared variant.
func (t *Table[T]) Valid(v T) bool {
	return int(v) < len(t.names)
}

// Data returns the render record of v. Undeclared values, only reachable
// through unchecked conversions, project to the zero record.
func (t *Table[T]) Data(v T) IconData {
	if !t.Valid(v) {
		return IconData{}
	}
	return t.data[v]
}

// Name returns the canonical identifier of v, or "XyIcon(n)" for
// undeclared values.
func (t *Table[T]) Name(v T) string {
	if !t.Valid(v) {
		return t.set.EnumName() + "(" + strconv.Itoa(int(v)) + ")"
	}
	return t.names[v]
}

// Parse returns the variant with the given canonical identifier.
func (t *Table[T]) Parse(name string) (T, error) {
	i, ok := slices.BinarySearch(t.names, name)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %q", ErrUnknownVariant, t.set.EnumName(), name)
	}
	return T(i), nil
}

// All yields every variant in declaration order.
func (t *Table[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range t.names {
			if !yield(T(i)) {
				return
			}
		}
	}
}

// MarshalText encodes v as its canonical identifier.
func (t *Table[T]) MarshalText(v T) ([]byte, error) {
	if !t.Valid(v) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, t.Name(v))
	}
	return []byte(t.names[v]), nil
}

// UnmarshalText decodes a canonical identifier into dst.
func (t *Table[T]) UnmarshalText(dst *T, b []byte) error {
	v, err := t.Parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Package core holds the types shared by the icondata aggregator and every
// generated icon-set package: the render record ([IconData]), its optional
// attribute type ([Attr]), the set discriminant ([Set]) and the lookup table
// ([Table]) that backs each per-set enumeration.
//
// Set packages depend on core only, never on each other or on the
// aggregator, so that each set can be versioned and linked independently.
//
// All string payloads referenced by core values are program-lifetime
// constants. Nothing in this package allocates to project, copy or compare
// a record.
package core

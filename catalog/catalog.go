// Package catalog enumerates the icon sets enabled in the current build.
//
// It backs documentation pages and icon pickers:
//
//	for _, e := range catalog.Entries() {
//	    fmt.Println(e.Set, e.Name, len(e.Icons))
//	}
package catalog

import (
	"fmt"
	"strings"

	"github.com/pthm/icondata"
)

// Source describes the upstream project of a set. Each generated set
// package declares its own; the catalog reads it from the registration.
type Source = icondata.Source

// Entry describes one enabled set.
type Entry struct {
	Set icondata.Set
	Source

	// Icons holds every canonical identifier in declaration order.
	Icons []string
}

// SourceOf returns the upstream of an enabled curated set.
func SourceOf(set icondata.Set) (Source, bool) {
	return icondata.SourceOf(set)
}

// Entries returns the enabled curated sets in selector order.
func Entries() []Entry {
	var entries []Entry
	for _, set := range icondata.Enabled() {
		if e, ok := Lookup(set); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Lookup returns the entry of an enabled curated set.
func Lookup(set icondata.Set) (Entry, bool) {
	src, ok := icondata.SourceOf(set)
	if !ok {
		return Entry{}, false
	}
	e := Entry{Set: set, Source: src}
	for icon := range icondata.Variants(set) {
		e.Icons = append(e.Icons, name(icon))
	}
	return e, true
}

// Find returns the enabled icons whose identifier contains query, ignoring
// case, in selector order.
func Find(query string) []icondata.Icon {
	query = strings.ToLower(query)
	var found []icondata.Icon
	for _, set := range icondata.Enabled() {
		for icon := range icondata.Variants(set) {
			if strings.Contains(strings.ToLower(name(icon)), query) {
				found = append(found, icon)
			}
		}
	}
	return found
}

func name(icon icondata.Icon) string {
	if s, ok := icon.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(icon)
}

// Markdown renders the enabled sets as markdown: a summary table followed
// by the identifiers of each set.
func Markdown() string {
	entries := Entries()

	var b strings.Builder
	b.WriteString("# Icon Catalog\n\n")
	b.WriteString("Generated by `icondata catalog`. Enable a set with its build tag, e.g. `-tags Ai`.\n\n")
	b.WriteString("| Prefix | Set | Version | License | Icons |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | [%s](%s) | %s | %s | %d |\n", e.Set, e.Name, e.URL, e.Version, e.License, len(e.Icons))
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s (%s)\n\n", e.Name, e.Set)
		for _, icon := range e.Icons {
			fmt.Fprintf(&b, "- `%s`\n", icon)
		}
	}
	return b.String()
}

package catalog

import (
	"strings"
	"testing"

	"github.com/pthm/icondata"
	"github.com/pthm/icondata/core"
	"github.com/pthm/icondata/sets/lu"
)

func TestSourcesFollowRegistration(t *testing.T) {
	for _, set := range core.Sets() {
		src, ok := SourceOf(set)
		if ok != icondata.IsEnabled(set) {
			t.Errorf("SourceOf(%s) ok = %v, enabled = %v", set, ok, icondata.IsEnabled(set))
			continue
		}
		if ok && (strings.TrimSpace(src.Name) == "" || src.License == "" || src.URL == "") {
			t.Errorf("set %s has incomplete source %+v", set, src)
		}
	}
	if _, ok := SourceOf(icondata.Custom); ok {
		t.Error("Custom should not have an upstream")
	}
}

// The catalog reports what the generated package declares.
func TestSourceMatchesSetPackage(t *testing.T) {
	src, ok := SourceOf(icondata.Lu)
	if !icondata.IsEnabled(icondata.Lu) {
		if ok {
			t.Errorf("SourceOf(Lu) = %+v for a disabled set", src)
		}
		return
	}
	if src != lu.Source {
		t.Errorf("SourceOf(Lu) = %+v, want %+v", src, lu.Source)
	}
}

func TestEntriesMatchEnabledSets(t *testing.T) {
	entries := Entries()

	enabled := icondata.Enabled()
	if len(entries) != len(enabled)-1 {
		t.Fatalf("Entries() has %d sets, want %d", len(entries), len(enabled)-1)
	}
	for i, e := range entries {
		if e.Set != enabled[i] {
			t.Errorf("entry %d is %s, want %s", i, e.Set, enabled[i])
		}
		if len(e.Icons) != icondata.Len(e.Set) {
			t.Errorf("%s lists %d icons, want %d", e.Set, len(e.Icons), icondata.Len(e.Set))
		}
		for _, id := range e.Icons {
			if !strings.HasPrefix(id, e.Set.String()) {
				t.Errorf("%s icon %q lacks the set prefix", e.Set, id)
			}
		}
	}
}

func TestLookupCustom(t *testing.T) {
	if _, ok := Lookup(icondata.Custom); ok {
		t.Error("Lookup(Custom) should fail")
	}
}

func TestMarkdownListsEntries(t *testing.T) {
	markdown := Markdown()
	if !strings.HasPrefix(markdown, "# Icon Catalog\n") {
		t.Fatalf("unexpected heading:\n%s", markdown)
	}
	for _, e := range Entries() {
		if !strings.Contains(markdown, "| "+e.Set.String()+" |") {
			t.Errorf("markdown missing row for %s", e.Set)
		}
		for _, id := range e.Icons {
			if !strings.Contains(markdown, "`"+id+"`") {
				t.Errorf("markdown missing icon %s", id)
			}
		}
	}
}

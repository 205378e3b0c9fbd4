package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pthm/icondata/core"
)

// Manifest lists the icon sets to generate and where their SVG corpora live.
//
//	module: github.com/pthm/icondata
//	sets:
//	  - prefix: Fi
//	    name: Feather
//	    version: 4.29.1
//	    license: MIT
//	    source: third_party/feather/icons
//	    defaults:
//	      viewBox: 0 0 24 24
//	      fill: none
type Manifest struct {
	Module string    `yaml:"module"`
	Sets   []SetSpec `yaml:"sets"`

	// dir is the directory of the manifest file; relative sources resolve
	// against it.
	dir string
}

// SetSpec describes one icon set.
type SetSpec struct {
	Prefix  string `yaml:"prefix"`
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	License string `yaml:"license,omitempty"`
	URL     string `yaml:"url,omitempty"`
	Source  string `yaml:"source"`

	// Defaults are root SVG attributes applied to every icon of the set
	// that does not carry the attribute itself. Keys are SVG names
	// (viewBox, stroke-width, ...).
	Defaults map[string]string `yaml:"defaults,omitempty"`
}

// Upstream returns the set's upstream description as generated code
// declares it.
func (s SetSpec) Upstream() core.Source {
	return core.Source{Name: s.Name, Version: s.Version, License: s.License, URL: s.URL}
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// ParseManifest decodes and validates manifest YAML. Unknown keys are
// rejected so that typos in attribute names do not pass silently.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.dir = "."
	return &m, nil
}

// Validate checks module path, prefixes and default attribute names.
func (m *Manifest) Validate() error {
	if m.Module == "" {
		return errors.New("manifest: module is required")
	}
	if len(m.Sets) == 0 {
		return errors.New("manifest: no sets")
	}

	seen := make(map[core.Set]bool)
	for i, spec := range m.Sets {
		set, err := spec.Set()
		if err != nil {
			return fmt.Errorf("manifest: sets[%d]: %w", i, err)
		}
		if seen[set] {
			return fmt.Errorf("manifest: duplicate set %s", set)
		}
		seen[set] = true

		if spec.Source == "" {
			return fmt.Errorf("manifest: set %s: source is required", set)
		}
		for name := range spec.Defaults {
			if _, ok := attrFieldNames[name]; !ok {
				return fmt.Errorf("manifest: set %s: unknown default attribute %q", set, name)
			}
		}
	}
	return nil
}

// Set resolves the spec's prefix against the catalogue.
func (s SetSpec) Set() (core.Set, error) {
	set, err := core.ParseSet(s.Prefix)
	if err != nil {
		return 0, err
	}
	if set == core.Custom {
		return 0, fmt.Errorf("%w: Custom is not a generated set", core.ErrUnknownSet)
	}
	return set, nil
}

// Lookup returns the spec for set.
func (m *Manifest) Lookup(set core.Set) (SetSpec, bool) {
	for _, spec := range m.Sets {
		if s, err := spec.Set(); err == nil && s == set {
			return spec, true
		}
	}
	return SetSpec{}, false
}

// SourceDir resolves a set's corpus directory.
func (m *Manifest) SourceDir(spec SetSpec) string {
	if filepath.IsAbs(spec.Source) {
		return spec.Source
	}
	return filepath.Join(m.dir, spec.Source)
}

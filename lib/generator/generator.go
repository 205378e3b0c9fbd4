// Package generator builds the per-set icon packages and the gated
// aggregator files from SVG corpora described by a YAML manifest.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pthm/icondata/core"
)

// Options configures the generator.
type Options struct {
	DryRun bool

	// Root is the module root that receives sets/<pkg>/ and set_<pkg>.go.
	Root string

	// Only restricts generation to the given prefixes. Empty means all
	// sets of the manifest.
	Only []string
}

// Generator generates icon set code.
type Generator struct {
	opts  Options
	namer *namer
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Generator{
		opts:  opts,
		namer: newNamer(),
	}
}

// SetInfo holds a loaded set ready for rendering.
type SetInfo struct {
	Spec   SetSpec
	Set    core.Set
	Module string
	Icons  []IconInfo
}

// IconInfo is one icon of a set.
type IconInfo struct {
	Ident  string // e.g. "AiFileImageTwotone"
	Source string // SVG file the icon was read from
	Data   core.IconData
}

// Package returns the set's package name ("ai").
func (s *SetInfo) Package() string {
	return s.Set.Package()
}

// Enum returns the set's enumeration type name ("AiIcon").
func (s *SetInfo) Enum() string {
	return s.Set.EnumName()
}

// Generate loads every selected set of m and writes its files. It stops
// between sets when ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, m *Manifest) error {
	specs, err := g.selected(m)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := g.LoadSet(m, spec)
		if err != nil {
			return fmt.Errorf("set %s: %w", spec.Prefix, err)
		}
		if err := g.writeSet(info); err != nil {
			return fmt.Errorf("set %s: %w", spec.Prefix, err)
		}
	}
	return nil
}

// Clean removes the generated files of every selected set.
func (g *Generator) Clean(m *Manifest) error {
	specs, err := g.selected(m)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		set, err := spec.Set()
		if err != nil {
			return err
		}
		for _, path := range []string{g.setFile(set), g.testFile(set), g.armFile(set)} {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue
			}
			Logger().Info("removing", "path", path)
			if g.opts.DryRun {
				continue
			}
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}

// selected returns the manifest specs matching Options.Only.
func (g *Generator) selected(m *Manifest) ([]SetSpec, error) {
	if len(g.opts.Only) == 0 {
		return m.Sets, nil
	}

	var specs []SetSpec
	for _, prefix := range g.opts.Only {
		set, err := core.ParseSet(prefix)
		if err != nil {
			return nil, err
		}
		spec, ok := m.Lookup(set)
		if !ok {
			return nil, fmt.Errorf("set %s is not in the manifest", set)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadSet reads every *.svg file of the set's corpus directory.
// Icons are sorted by identifier, which fixes variant declaration order.
func (g *Generator) LoadSet(m *Manifest, spec SetSpec) (*SetInfo, error) {
	set, err := spec.Set()
	if err != nil {
		return nil, err
	}
	dir := m.SourceDir(spec)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	info := &SetInfo{Spec: spec, Set: set, Module: m.Module}
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".svg") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		ident, err := g.namer.identifier(set.String(), entry.Name())
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[ident]; ok {
			return nil, fmt.Errorf("%s and %s both map to %s", prev, path, ident)
		}
		seen[ident] = path

		data, err := parseSVGFile(path, spec.Defaults)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		Logger().Debug("icon", "set", set.String(), "ident", ident, "file", path)
		info.Icons = append(info.Icons, IconInfo{Ident: ident, Source: path, Data: data})
	}

	if len(info.Icons) == 0 {
		return nil, fmt.Errorf("no SVG files in %s", dir)
	}
	if len(info.Icons) > 1<<16 {
		return nil, fmt.Errorf("%d icons exceed the uint16 enumeration", len(info.Icons))
	}

	sort.Slice(info.Icons, func(i, j int) bool {
		return info.Icons[i].Ident < info.Icons[j].Ident
	})
	return info, nil
}

func parseSVGFile(path string, defaults map[string]string) (core.IconData, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.IconData{}, err
	}
	defer f.Close()
	return ParseSVG(f, defaults)
}

// setFile is the path of a set package's generated source.
func (g *Generator) setFile(set core.Set) string {
	pkg := set.Package()
	return filepath.Join(g.opts.Root, "sets", pkg, pkg+".go")
}

// testFile is the path of a set package's generated test.
func (g *Generator) testFile(set core.Set) string {
	pkg := set.Package()
	return filepath.Join(g.opts.Root, "sets", pkg, pkg+"_test.go")
}

// armFile is the path of a set's gated aggregator file.
func (g *Generator) armFile(set core.Set) string {
	return filepath.Join(g.opts.Root, "set_"+set.Package()+".go")
}

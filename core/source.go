package core

// Source describes the upstream project a curated set is generated from.
// Generated set packages declare it from the manifest entry of the set.
type Source struct {
	Name    string // e.g. "Lucide"
	Version string
	License string // SPDX identifier
	URL     string
}

// String returns "Name Version (License)", omitting empty parts.
func (s Source) String() string {
	out := s.Name
	if s.Version != "" {
		out += " " + s.Version
	}
	if s.License != "" {
		out += " (" + s.License + ")"
	}
	return out
}

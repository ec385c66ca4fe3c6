package templates

import (
	"maps"
	"regexp"
	"slices"
)

// Template subdirectories.
const (
	Layouts  = "layouts"
	Pages    = "pages"
	Partials = "partials"
)

// DefaultSubdirs are the subdirectories scanned in every template root.
var DefaultSubdirs = []string{Layouts, Pages, Partials}

// DefaultPattern matches Handlebars files and captures the template key.
var DefaultPattern = regexp.MustCompile(`(?i)(.+)\.(hbs|handlebars)$`)

// Map holds raw template sources: subdirectory -> template key -> source.
type Map map[string]map[string]string

// Get returns the source of a template.
func (m Map) Get(subdir, key string) (string, bool) {
	src, ok := m[subdir][key]
	return src, ok
}

// Keys returns the sorted template keys of a subdirectory.
func (m Map) Keys(subdir string) []string {
	return slices.Sorted(maps.Keys(m[subdir]))
}

// Subdirs returns the sorted subdirectories that hold at least one template.
func (m Map) Subdirs() []string {
	out := make([]string, 0, len(m))
	for subdir, entries := range m {
		if len(entries) > 0 {
			out = append(out, subdir)
		}
	}
	slices.Sort(out)
	return out
}

// Clone returns a copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for subdir, entries := range m {
		out[subdir] = maps.Clone(entries)
	}
	return out
}

// set stores src unless subdir/key is already defined. Reports whether it stored.
func (m Map) set(subdir, key, src string) bool {
	entries, ok := m[subdir]
	if !ok {
		entries = make(map[string]string)
		m[subdir] = entries
	}
	if _, exists := entries[key]; exists {
		return false
	}
	entries[key] = src
	return true
}

// put stores src, replacing any previous definition.
func (m Map) put(subdir, key, src string) {
	entries, ok := m[subdir]
	if !ok {
		entries = make(map[string]string)
		m[subdir] = entries
	}
	entries[key] = src
}

// has reports whether subdir/key is defined.
func (m Map) has(subdir, key string) bool {
	_, ok := m[subdir][key]
	return ok
}

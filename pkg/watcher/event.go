package watcher

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventType is the kind of change to a path.
type EventType int

const (
	Created EventType = iota
	Modified
	Deleted
	Renamed
)

func (e EventType) String() string {
	switch e {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Event is a change to a single path.
type Event struct {
	Type EventType
	Path string
}

func eventFrom(e fsnotify.Event) Event {
	t := Modified
	switch {
	case e.Has(fsnotify.Create):
		t = Created
	case e.Has(fsnotify.Remove):
		t = Deleted
	case e.Has(fsnotify.Rename):
		t = Renamed
	}
	return Event{Type: t, Path: e.Name}
}

// Filter reports whether a path is of interest.
type Filter func(path string) bool

// ExtensionFilter accepts paths with one of exts (case-insensitive, with the dot).
func ExtensionFilter(exts ...string) Filter {
	return func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		return slices.ContainsFunc(exts, func(e string) bool {
			return strings.EqualFold(e, ext)
		})
	}
}

// TemplateFilter accepts Handlebars templates.
func TemplateFilter(path string) bool {
	return ExtensionFilter(".hbs", ".handlebars")(path)
}

// MessageFilter accepts message bundles.
func MessageFilter(path string) bool {
	return ExtensionFilter(".json", ".json5", ".yaml", ".yml")(path)
}

// NoHiddenFilter rejects dotfiles, such as editor swap files.
func NoHiddenFilter(path string) bool {
	return !strings.HasPrefix(filepath.Base(path), ".")
}

// AnyOf accepts a path accepted by any of filters.
func AnyOf(filters ...Filter) Filter {
	return func(path string) bool {
		for _, f := range filters {
			if f(path) {
				return true
			}
		}
		return false
	}
}

// coalesce keeps the latest event per path, ordered by path.
func coalesce(events []Event) []Event {
	latest := make(map[string]Event, len(events))
	for _, e := range events {
		latest[e.Path] = e
	}
	out := make([]Event, 0, len(latest))
	for _, e := range latest {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Event) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

package helpers

import (
	"fmt"
	"maps"
	"reflect"
)

// Map is a set of named helper functions.
type Map map[string]any

// Merge combines maps. Later maps override earlier ones.
func Merge(ms ...Map) Map {
	out := make(Map)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// Defaults returns the built-in helpers: md, jsonify and equals.
func Defaults() Map {
	return Map{
		"md":      Markdown,
		"jsonify": JSONify,
		"equals":  Equals,
	}
}

// Registry collects helpers and rejects invalid or duplicate ones.
// It is not safe for concurrent registration.
type Registry struct {
	helpers Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{helpers: make(Map)}
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn any) error {
	if name == "" {
		return ErrMissingHelperName
	}
	if fn == nil {
		return ErrNilHelper
	}
	if t := reflect.TypeOf(fn); t.Kind() != reflect.Func || t.NumOut() != 1 {
		return fmt.Errorf("%w: %q is %T", ErrInvalidHelper, name, fn)
	}
	if _, ok := r.helpers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateHelper, name)
	}
	r.helpers[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn any) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// RegisterMap adds every helper in m, stopping at the first error.
func (r *Registry) RegisterMap(m Map) error {
	for name, fn := range m {
		if err := r.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// Map returns a copy of the registered helpers.
func (r *Registry) Map() Map {
	return maps.Clone(r.helpers)
}

package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// Messages maps a message key to a localized string or a nested Messages map.
type Messages map[string]any

// Store holds message bundles keyed by locale ("en_us") or language ("en").
type Store map[string]Messages

// Lookup resolves a dotted key path ("errors.not_found") against nested messages.
func (m Messages) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	if v, ok := m[path]; ok {
		return v, true
	}

	current := m
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := asMessages(v)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// String returns the message at path when it is a string.
func (m Messages) String(path string) (string, bool) {
	v, ok := m.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Tags returns the sorted list of locale and language tags in the store.
func (s Store) Tags() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Clone returns a deep copy of the store.
func (s Store) Clone() Store {
	if s == nil {
		return nil
	}
	out := make(Store, len(s))
	for tag, msgs := range s {
		out[tag] = msgs.Clone()
	}
	return out
}

// Derive builds a single message map for locale with three-tier precedence:
// the locale itself, then its language, then the default locale.
// Absent bundles contribute nothing; the result is never nil.
func Derive(locale string, store Store, defaultLocale string) Messages {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	result := DeepMerge(nil, store[NormalizeLocale(defaultLocale)])
	if locale == "" {
		return result
	}

	locale = NormalizeLocale(locale)
	if lang := LanguageOf(locale); lang != locale {
		mergeInto(result, store[lang])
	}
	mergeInto(result, store[locale])

	return result
}

// DeriveFromHeader negotiates a locale from an Accept-Language header and
// derives its messages. An empty or malformed header yields the default bundle.
func DeriveFromHeader(header string, store Store, defaultLocale string) Messages {
	return Derive(NegotiateLocale(header, store, defaultLocale), store, defaultLocale)
}

// DeriveFromRequest derives messages from the request's Accept-Language header.
func DeriveFromRequest(r *http.Request, store Store, defaultLocale string) Messages {
	if r == nil {
		return Derive("", store, defaultLocale)
	}
	return DeriveFromHeader(r.Header.Get("Accept-Language"), store, defaultLocale)
}

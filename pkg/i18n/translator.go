package i18n

import (
	"fmt"
	"maps"
)

// Translator resolves message keys against messages derived for one locale.
type Translator struct {
	messages Messages
	locale   string

	// missing is called with the key when no message exists for it.
	missing func(locale, key string)
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithMissingKeyHandler sets a handler called when a message key is not found.
// Useful for detecting untranslated keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) TranslatorOption {
	return func(t *Translator) {
		t.missing = handler
	}
}

// NewTranslator creates a Translator over already derived messages.
// A nil messages map translates every key to itself.
func NewTranslator(messages Messages, locale string, opts ...TranslatorOption) *Translator {
	if messages == nil {
		messages = Messages{}
	}
	t := &Translator{
		messages: messages,
		locale:   NormalizeLocale(locale),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewLoaderTranslator creates a Translator for the loader's current locale.
func NewLoaderTranslator(l *MessageLoader, opts ...TranslatorOption) *Translator {
	if l == nil {
		panic("i18n: message loader is not provided")
	}
	return NewTranslator(l.Messages(), l.Locale(), opts...)
}

// T translates a dotted key, replacing {{name}} placeholders.
// Returns the key itself when no message exists.
func (t *Translator) T(key string, placeholders ...M) string {
	v, ok := t.messages.Lookup(key)
	if !ok {
		if t.missing != nil {
			t.missing(t.locale, key)
		}
		return key
	}

	message, ok := v.(string)
	if !ok {
		message = fmt.Sprintf("%v", v)
	}

	if len(placeholders) == 0 {
		return message
	}
	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(message, merged)
}

// Tn translates a pluralized key for count n. The message at key holds one
// entry per plural category; a missing category falls back towards "other".
// The count is available as the {{count}} placeholder.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	form := PluralForm(t.locale, n)

	var message string
	found := false
	for _, f := range append([]string{form}, pluralFallbacks(form)...) {
		if v, ok := t.messages.Lookup(key + "." + f); ok {
			message, found = fmt.Sprintf("%v", v), true
			break
		}
	}
	if !found {
		if t.missing != nil {
			t.missing(t.locale, key)
		}
		return key
	}

	merged := M{"count": n}
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(message, merged)
}

// TranslateMessage translates a key with a single placeholder map.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.T(key, values)
}

// Has reports whether a message exists for key.
func (t *Translator) Has(key string) bool {
	_, ok := t.messages.Lookup(key)
	return ok
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Messages returns the underlying messages.
func (t *Translator) Messages() Messages {
	return t.messages
}

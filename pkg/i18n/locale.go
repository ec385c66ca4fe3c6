package i18n

import "strings"

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en_us"

// localeSeparator is the canonical separator between language and region.
const localeSeparator = "_"

// NormalizeLocale lower-cases a locale or language tag and converts "-"
// separators to the canonical "_" form ("en-US" -> "en_us").
func NormalizeLocale(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "-", localeSeparator)
}

// LanguageOf returns the language part of a locale: its first two letters,
// lower-cased ("en_us" -> "en"). Tags without a separator are already a language.
func LanguageOf(locale string) string {
	locale = NormalizeLocale(locale)
	if i := strings.IndexByte(locale, '_'); i >= 0 {
		locale = locale[:i]
	}
	if len(locale) > 2 {
		return locale[:2]
	}
	return locale
}

// IsLanguage reports whether tag carries no region part.
func IsLanguage(tag string) bool {
	return !strings.Contains(NormalizeLocale(tag), localeSeparator)
}

package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// localeTag represents a parsed locale tag with quality value.
type localeTag struct {
	tag     string
	quality float64
}

// ParseLocalePreference parses an Accept-Language header into an ordered list
// of normalized locale tags, highest quality first. Tags with equal quality keep
// their header order. Wildcards, q=0 entries and malformed tags are dropped.
//
// Example header: "fr-CA,en;q=0.5"
// Returns: ["fr_ca", "en"]
func ParseLocalePreference(header string) []string {
	tags := parseLocaleTags(header)
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t.tag]; dup {
			continue
		}
		seen[t.tag] = struct{}{}
		result = append(result, t.tag)
	}
	return result
}

// NegotiateLocale picks the locale to derive messages for. It returns the first
// preferred tag for which the store holds either the exact locale bucket or its
// language bucket. Falls back to defaultLocale when nothing matches.
func NegotiateLocale(header string, store Store, defaultLocale string) string {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	for _, tag := range ParseLocalePreference(header) {
		if _, ok := store[tag]; ok {
			return tag
		}
		if _, ok := store[LanguageOf(tag)]; ok {
			return tag
		}
	}
	return NormalizeLocale(defaultLocale)
}

// ServingBundle negotiates locale against store and returns the tag of the
// bucket that serves it: the negotiated locale when present, else its
// language, else defaultLocale.
func ServingBundle(locale string, store Store, defaultLocale string) string {
	tag := NegotiateLocale(locale, store, defaultLocale)
	if _, ok := store[tag]; ok {
		return tag
	}
	if lang := LanguageOf(tag); lang != tag {
		if _, ok := store[lang]; ok {
			return lang
		}
	}
	return NormalizeLocale(cmp.Or(defaultLocale, DefaultLocale))
}

// parseLocaleTags parses the Accept-Language header into normalized tags with quality values.
func parseLocaleTags(header string) []localeTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []localeTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tagPart, qPart, hasQuality := strings.Cut(part, ";")
		tagPart = strings.TrimSpace(tagPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)

			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if tagPart == "" || tagPart == "*" || quality == 0 {
			continue
		}
		if !wellFormed(tagPart) {
			continue
		}

		tags = append(tags, localeTag{
			tag:     NormalizeLocale(tagPart),
			quality: quality,
		})
	}

	slices.SortStableFunc(tags, func(a, b localeTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

// wellFormed reports whether tag parses as a BCP 47 language tag.
func wellFormed(tag string) bool {
	_, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	return err == nil
}

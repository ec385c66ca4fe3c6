//go:build property

package i18n_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/hbkit/pkg/i18n"
)

// TestDeriveProperties checks the three-tier precedence of Derive.
func TestDeriveProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	localeGen := gen.RegexMatch(`^[a-z]{2}_[a-z]{2}$`)

	// A key defined only at the default locale survives any locale that does not override it.
	properties.Property("default-only keys are inherited", prop.ForAll(
		func(locale, value string) bool {
			if locale == "en_us" {
				return true
			}
			store := i18n.Store{
				"en_us":                 {"only_default": value},
				locale:                  {"other": "x"},
				i18n.LanguageOf(locale): {"another": "y"},
			}
			got := i18n.Derive(locale, store, "en_us")
			return got["only_default"] == value
		},
		localeGen,
		gen.AlphaString(),
	))

	// The exact locale always beats its language and the default.
	properties.Property("locale wins", prop.ForAll(
		func(locale, a, b, c string) bool {
			store := i18n.Store{
				"en_us":                 {"k": a},
				i18n.LanguageOf(locale): {"k": b},
				locale:                  {"k": c},
			}
			return i18n.Derive(locale, store, "en_us")["k"] == c
		},
		localeGen,
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// Overlaying never loses keys from either side.
	properties.Property("merge keeps the union of keys", prop.ForAll(
		func(left, right map[string]string) bool {
			dst := make(i18n.Messages, len(left))
			for k, v := range left {
				dst[k] = v
			}
			src := make(i18n.Messages, len(right))
			for k, v := range right {
				src[k] = v
			}
			got := i18n.DeepMerge(dst, src)
			for k := range left {
				if _, ok := got[k]; !ok {
					return false
				}
			}
			for k, v := range right {
				if got[k] != v {
					return false
				}
			}
			return true
		},
		gen.MapOf(gen.AlphaString(), gen.AlphaString()),
		gen.MapOf(gen.AlphaString(), gen.AlphaString()),
	))

	properties.TestingRun(t)
}

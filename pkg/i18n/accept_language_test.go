package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hbkit/pkg/i18n"
)

func TestParseLocalePreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected []string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: nil,
		},
		{
			name:     "orders by quality and normalizes",
			header:   "fr-CA,en;q=0.5,de-DE;q=0.8",
			expected: []string{"fr_ca", "de_de", "en"},
		},
		{
			name:     "equal quality keeps header order",
			header:   "pl,en,de",
			expected: []string{"pl", "en", "de"},
		},
		{
			name:     "drops wildcard and zero quality",
			header:   "*,en;q=0,fr;q=0.3",
			expected: []string{"fr"},
		},
		{
			name:     "drops malformed tags",
			header:   "en-US, 123456789, !!, fr",
			expected: []string{"en_us", "fr"},
		},
		{
			name:     "removes duplicates keeping highest quality",
			header:   "en;q=0.2,fr,en-gb;q=0.5,EN",
			expected: []string{"fr", "en", "en_gb"},
		},
		{
			name:     "underscore separators are accepted",
			header:   "pt_BR",
			expected: []string{"pt_br"},
		},
		{
			name:     "oversized header is truncated",
			header:   strings.Repeat("en,", 2000) + "pl",
			expected: []string{"en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.ParseLocalePreference(tt.header))
		})
	}
}

func TestNegotiateLocale(t *testing.T) {
	t.Parallel()

	store := i18n.Store{
		"en_us": {},
		"en":    {},
		"fr":    {},
	}

	require.Equal(t, "fr_ca", i18n.NegotiateLocale("fr-CA,en;q=0.5", store, "en_us"))
	require.Equal(t, "en", i18n.NegotiateLocale("de-DE,en;q=0.5", store, "en_us"))
	require.Equal(t, "en_us", i18n.NegotiateLocale("ja", store, "en_us"))
	require.Equal(t, "en_us", i18n.NegotiateLocale("", store, "EN-us"))
	require.Equal(t, "en_us", i18n.NegotiateLocale("ja", store, ""))
}

func TestServingBundle(t *testing.T) {
	t.Parallel()

	store := i18n.Store{
		"en_us": {},
		"en":    {},
		"de":    {},
		"de_at": {},
	}

	tests := []struct {
		locale   string
		expected string
	}{
		{"de_at", "de_at"},
		{"de-AT", "de_at"},
		{"de_de", "de"},
		{"de_zz", "de"},
		{"de", "de"},
		{"en_gb", "en"},
		{"ja", "en_us"},
		{"", "en_us"},
		{"fr-CA,de;q=0.5", "de"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, i18n.ServingBundle(tt.locale, store, "en_us"), tt.locale)
	}

	require.Equal(t, "en", i18n.ServingBundle("ja", i18n.Store{"en": {}}, "en_us"))
}

func TestLanguageOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", i18n.LanguageOf("en_us"))
	require.Equal(t, "en", i18n.LanguageOf("EN-US"))
	require.Equal(t, "fr", i18n.LanguageOf("fr"))
	require.Equal(t, "", i18n.LanguageOf(""))
	require.True(t, i18n.IsLanguage("de"))
	require.False(t, i18n.IsLanguage("de-AT"))
	require.Equal(t, "zh_hant_tw", i18n.NormalizeLocale(" zh-Hant-TW "))
}

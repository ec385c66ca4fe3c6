// Package i18n loads locale message bundles from directories and derives a
// single merged message map for a requested locale.
//
// # Bundle Files
//
// A message directory holds relaxed-JSON (JSON5) files. The file name decides
// which bucket a file feeds (case-insensitive):
//
//	messages-en_us.json5  locale "en_us" (also merged into language "en")
//	messages-en.json      language "en"
//	messages.json5        the default locale
//
// Load every directory at startup:
//
//	store, err := i18n.LoadMessageBundles(
//		[]string{"./messages", "./vendor/messages"},
//		"en_us",
//		i18n.WithLogger(log),
//	)
//
// All locale files are merged first, then all language files, so a key defined
// in a language file always beats the same key inherited from one of its locales,
// regardless of directory order. Directories that cannot be read are logged and
// skipped; a file that fails to parse aborts the load with ErrInvalidFile.
//
// # Deriving Messages
//
// Derive overlays three tiers, lowest precedence first: the default locale, the
// requested locale's language, and the locale itself:
//
//	store := i18n.Store{
//		"en_us": {"greeting": "hi"},
//		"en":    {"greeting": "hello", "farewell": "bye"},
//	}
//	msgs := i18n.Derive("en-US", store, "en_us")
//	// msgs: {"greeting": "hi", "farewell": "bye"}
//
// Missing buckets contribute nothing and never cause an error.
//
// # Accept-Language
//
// ParseLocalePreference turns a header into an ordered tag list, and
// DeriveFromHeader/DeriveFromRequest negotiate the first tag the store can serve:
//
//	msgs := i18n.DeriveFromHeader("fr-CA,en;q=0.5", store, "en_us")
//
// # Message Loader
//
// MessageLoader owns a Store and the messages derived for its current locale.
// It re-derives on SetLocale and Reload, and is safe for concurrent use.
package i18n

package helpers

import (
	"strconv"

	"github.com/aymerick/raymond"

	"github.com/dmitrymomot/hbkit/pkg/i18n"
)

// Messages returns the message and plural helpers bound to messages for locale.
func Messages(messages i18n.Messages, locale string) Map {
	tr := i18n.NewTranslator(messages, locale)
	return Map{
		"message": translate(tr),
		"plural":  pluralize(tr),
	}
}

// Message returns a helper that looks up a message key and fills its
// {{name}} placeholders from the hash arguments.
//
//	{{message "welcome" name=user.name}}
func Message(messages i18n.Messages) func(key any, options *raymond.Options) string {
	return translate(i18n.NewTranslator(messages, ""))
}

func translate(tr *i18n.Translator) func(key any, options *raymond.Options) string {
	return func(key any, options *raymond.Options) string {
		return tr.TranslateMessage(raymond.Str(key), options.Hash())
	}
}

// pluralize selects the plural form of a message for a count.
//
//	{{plural "items" count}}
func pluralize(tr *i18n.Translator) func(key, count any, options *raymond.Options) string {
	return func(key, count any, options *raymond.Options) string {
		return tr.Tn(raymond.Str(key), toInt(count), options.Hash())
	}
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}

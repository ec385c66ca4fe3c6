package helpers

import "github.com/aymerick/raymond"

// Equals is a block helper that renders its body when both values have the
// same string form, and its else branch otherwise.
//
//	{{#equals "good" payload}}equals{{else}}not equals{{/equals}}
func Equals(a, b any, options *raymond.Options) string {
	if raymond.Str(a) == raymond.Str(b) {
		return options.Fn()
	}
	return options.Inverse()
}

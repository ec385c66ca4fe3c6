package i18n

import (
	"fmt"
	"strings"
)

// M is a shorthand for placeholder values.
type M map[string]any

// ReplacePlaceholders replaces placeholders in the message with values
// from the provided map. Placeholders use the format {{name}}.
// If a placeholder is not found in the map, it remains unchanged.
//
// Example:
//
//	message: "Hello, {{name}}! You have {{count}} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(message string, placeholders M) string {
	if len(placeholders) < 1 || !strings.Contains(message, "{{") {
		return message
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}

	return strings.NewReplacer(pairs...).Replace(message)
}

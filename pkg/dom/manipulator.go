package dom

import (
	"fmt"
	"strings"
)

// Manipulator defines how rendered markup is inserted relative to the target element.
type Manipulator string

const (
	HTML        Manipulator = "html"        // Replace the contents of the target element
	Append      Manipulator = "append"      // Insert after the last child of the target element
	Prepend     Manipulator = "prepend"     // Insert before the first child of the target element
	Before      Manipulator = "before"      // Insert before the target element
	After       Manipulator = "after"       // Insert after the target element
	ReplaceWith Manipulator = "replaceWith" // Replace the entire target element
)

// Manipulators lists every supported manipulator.
var Manipulators = []Manipulator{HTML, Append, Prepend, Before, After, ReplaceWith}

// ParseManipulator parses a manipulator name. Matching is case-insensitive and
// an empty string means HTML.
func ParseManipulator(s string) (Manipulator, error) {
	if s == "" {
		return HTML, nil
	}
	for _, m := range Manipulators {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownManipulator, s)
}

// Swap returns the equivalent htmx hx-swap strategy.
func (m Manipulator) Swap() string {
	switch m {
	case Append:
		return "beforeend"
	case Prepend:
		return "afterbegin"
	case Before:
		return "beforebegin"
	case After:
		return "afterend"
	case ReplaceWith:
		return "outerHTML"
	}
	return "innerHTML"
}

func (m Manipulator) String() string {
	return string(m)
}

package helpers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aymerick/raymond"
)

// defaultJSONSpace is the indent width used when no space option is given.
const defaultJSONSpace = 2

// JSONify encodes a value as JSON. The space hash option sets the indent
// width; zero produces compact output.
//
//	{{{jsonify payload space=0}}}
func JSONify(value any, options *raymond.Options) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if space := jsonSpace(options.HashProp("space")); space > 0 {
		enc.SetIndent("", strings.Repeat(" ", space))
	}
	if err := enc.Encode(value); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func jsonSpace(v any) int {
	switch s := v.(type) {
	case nil:
		return defaultJSONSpace
	case int:
		return s
	case int64:
		return int(s)
	case float64:
		return int(s)
	case string:
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return defaultJSONSpace
}

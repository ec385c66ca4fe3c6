package helpers_test

import (
	"strings"
	"testing"

	"github.com/aymerick/raymond"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/i18n"
)

func exec(t *testing.T, source string, h helpers.Map, ctx any) string {
	t.Helper()
	tpl, err := raymond.Parse(source)
	require.NoError(t, err)
	tpl.RegisterHelpers(h)
	out, err := tpl.Exec(ctx)
	require.NoError(t, err)
	return out
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown", func(t *testing.T) {
		t.Parallel()
		out := exec(t, "{{{md payload}}}", helpers.Defaults(), map[string]any{"payload": "*this works*"})
		require.Equal(t, "<p><em>this works</em></p>", strings.TrimSpace(out))
	})

	t.Run("is not escaped with double braces", func(t *testing.T) {
		t.Parallel()
		out := exec(t, "{{md payload}}", helpers.Defaults(), map[string]any{"payload": "**bold**"})
		require.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("strips scripts", func(t *testing.T) {
		t.Parallel()
		out := helpers.Markdown("hello <script>alert(1)</script>")
		require.NotContains(t, string(out), "<script>")
		require.Contains(t, string(out), "hello")
	})

	t.Run("missing value renders nothing", func(t *testing.T) {
		t.Parallel()
		out := exec(t, "{{{md payload}}}", helpers.Defaults(), map[string]any{})
		require.Empty(t, strings.TrimSpace(out))
	})
}

func TestJSONify(t *testing.T) {
	t.Parallel()

	payload := map[string]any{"a": 1, "b": []any{"x", "<y>"}}

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"compact", "{{{jsonify payload space=0}}}", `{"a":1,"b":["x","<y>"]}`},
		{"default indent", "{{{jsonify payload}}}", "{\n  \"a\": 1,\n  \"b\": [\n    \"x\",\n    \"<y>\"\n  ]\n}"},
		{"custom indent", "{{{jsonify payload space=1}}}", "{\n \"a\": 1,\n \"b\": [\n  \"x\",\n  \"<y>\"\n ]\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := exec(t, tt.source, helpers.Defaults(), map[string]any{"payload": payload})
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("escaped with double braces", func(t *testing.T) {
		t.Parallel()
		out := exec(t, "{{jsonify payload space=0}}", helpers.Defaults(), map[string]any{"payload": payload})
		require.NotContains(t, out, "<y>")
		require.Contains(t, out, "&lt;y&gt;")
	})
}

func TestEquals(t *testing.T) {
	t.Parallel()

	source := `{{#equals "good" payload}}equals{{else}}not equals{{/equals}}`

	tests := []struct {
		name     string
		payload  any
		expected string
	}{
		{"equal strings", "good", "equals"},
		{"different strings", "bad", "not equals"},
		{"missing value", nil, "not equals"},
		{"compares string form", 1, "not equals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := exec(t, source, helpers.Defaults(), map[string]any{"payload": tt.payload})
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("numbers compare by value", func(t *testing.T) {
		t.Parallel()
		out := exec(t, `{{#equals 1 count}}one{{else}}other{{/equals}}`, helpers.Defaults(), map[string]any{"count": 1})
		require.Equal(t, "one", out)
	})
}

func TestMessages(t *testing.T) {
	t.Parallel()

	msgs := i18n.Messages{
		"greeting": "Hello, {{name}}!",
		"html":     "<b>{{name}}</b>",
		"items": i18n.Messages{
			"one":   "{{count}} item",
			"other": "{{count}} items",
		},
	}
	h := helpers.Messages(msgs, "en_us")

	t.Run("substitutes hash arguments", func(t *testing.T) {
		t.Parallel()
		out := exec(t, `{{message "greeting" name=user}}`, h, map[string]any{"user": "Ann"})
		require.Equal(t, "Hello, Ann!", out)
	})

	t.Run("missing key renders the key", func(t *testing.T) {
		t.Parallel()
		out := exec(t, `{{message "nope.missing"}}`, h, nil)
		require.Equal(t, "nope.missing", out)
	})

	t.Run("escapes with double braces", func(t *testing.T) {
		t.Parallel()
		out := exec(t, `{{message "html" name="x"}}`, h, nil)
		require.Equal(t, "&lt;b&gt;x&lt;/b&gt;", out)
	})

	t.Run("pluralizes", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1 item", exec(t, `{{plural "items" count}}`, h, map[string]any{"count": 1}))
		require.Equal(t, "3 items", exec(t, `{{plural "items" count}}`, h, map[string]any{"count": 3}))
	})

	t.Run("message helper alone", func(t *testing.T) {
		t.Parallel()
		out := exec(t, `{{message "greeting" name="Bob"}}`, helpers.Map{"message": helpers.Message(msgs)}, nil)
		require.Equal(t, "Hello, Bob!", out)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers helpers", func(t *testing.T) {
		t.Parallel()
		reg := helpers.NewRegistry()
		require.NoError(t, reg.Register("upper", strings.ToUpper))
		require.NoError(t, reg.RegisterMap(helpers.Defaults()))
		require.Len(t, reg.Map(), 4)

		out := exec(t, "{{upper name}}", reg.Map(), map[string]any{"name": "ann"})
		require.Equal(t, "ANN", out)
	})

	t.Run("rejects invalid helpers", func(t *testing.T) {
		t.Parallel()
		reg := helpers.NewRegistry()
		require.ErrorIs(t, reg.Register("", strings.ToUpper), helpers.ErrMissingHelperName)
		require.ErrorIs(t, reg.Register("nil", nil), helpers.ErrNilHelper)
		require.ErrorIs(t, reg.Register("value", "not a func"), helpers.ErrInvalidHelper)
		require.ErrorIs(t, reg.Register("noreturn", func() {}), helpers.ErrInvalidHelper)

		require.NoError(t, reg.Register("upper", strings.ToUpper))
		require.ErrorIs(t, reg.Register("upper", strings.ToLower), helpers.ErrDuplicateHelper)
		require.Panics(t, func() { reg.MustRegister("upper", strings.ToLower) })
	})

	t.Run("map is a copy", func(t *testing.T) {
		t.Parallel()
		reg := helpers.NewRegistry()
		reg.MustRegister("upper", strings.ToUpper)
		m := reg.Map()
		delete(m, "upper")
		require.Contains(t, reg.Map(), "upper")
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	upper := helpers.Map{"x": strings.ToUpper}
	lower := helpers.Map{"x": strings.ToLower}

	merged := helpers.Merge(helpers.Defaults(), upper, lower)
	require.Len(t, merged, 4)
	out := exec(t, "{{x v}}", merged, map[string]any{"v": "AbC"})
	require.Equal(t, "abc", out)
}

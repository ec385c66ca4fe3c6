package internal_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hbkit/internal"
	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/render"
	"github.com/dmitrymomot/hbkit/pkg/templates"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

type fixture struct {
	views, shared, messages string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		views:    filepath.Join(root, "views"),
		shared:   filepath.Join(root, "shared"),
		messages: filepath.Join(root, "messages"),
	}
	writeFiles(t, f.views, map[string]string{
		"layouts/main.hbs":    "<main>{{body}}</main>",
		"pages/index.hbs":     `<h1>{{message "greeting" name=name}}</h1>{{>footer}}`,
		"pages/items.hbs":     `{{plural "items" count}}`,
		"pages/override.hbs":  "views",
		"partials/footer.hbs": "<footer>{{message \"farewell\"}}</footer>",
	})
	writeFiles(t, f.shared, map[string]string{
		"pages/override.hbs": "shared",
		"pages/shared.hbs":   "{{{md text}}}",
	})
	writeFiles(t, f.messages, map[string]string{
		"messages.json5": `{
			greeting: "Hello, {{name}}!",
			farewell: "Bye",
			items: {one: "{{count}} item", other: "{{count}} items"},
		}`,
		"messages-de.json5": `{greeting: "Hallo, {{name}}!"}`,
		"messages-de_at.json5": `{farewell: "Servus"}`,
	})
	return f
}

func newKit(t *testing.T, f fixture, opts ...internal.Option) *internal.Kit {
	t.Helper()
	kit, err := internal.New(append([]internal.Option{
		internal.WithTemplateDirs(f.views, f.shared),
		internal.WithMessageDirs(f.messages),
	}, opts...)...)
	require.NoError(t, err)
	return kit
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires template dirs", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(internal.WithMessageDirs("x"))
		require.ErrorIs(t, err, internal.ErrNoTemplateDirs)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(internal.WithTemplateDirs(t.TempDir()), internal.WithTemplatePattern("("))
		require.ErrorIs(t, err, internal.ErrInvalidPattern)
	})

	t.Run("rejects pattern without capture group", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(internal.WithTemplateDirs(t.TempDir()), internal.WithTemplatePattern(`\.hbs$`))
		require.ErrorIs(t, err, templates.ErrInvalidPattern)
	})

	t.Run("rejects invalid helpers", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(internal.WithTemplateDirs(t.TempDir()), internal.WithHelpers(helpers.Map{"x": 1}))
		require.ErrorIs(t, err, helpers.ErrInvalidHelper)
	})

	t.Run("message dirs are optional", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		kit, err := internal.New(internal.WithTemplateDirs(f.views))
		require.NoError(t, err)
		out, err := kit.Render("en_us", "index", map[string]any{"name": "Ann"})
		require.NoError(t, err)
		require.Equal(t, "<h1>greeting</h1><footer>farewell</footer>", out)
	})
}

func TestKit_Templates(t *testing.T) {
	t.Parallel()

	kit := newKit(t, newFixture(t))
	tpls := kit.Templates()

	src, ok := tpls.Get(templates.Pages, "override")
	require.True(t, ok)
	require.Equal(t, "views", src)
	require.Equal(t, []string{"index", "items", "override", "shared"}, tpls.Keys(templates.Pages))

	tpls[templates.Pages]["index"] = "mutated"
	src, _ = kit.Templates().Get(templates.Pages, "index")
	require.NotEqual(t, "mutated", src)
}

func TestKit_RendererPerBundle(t *testing.T) {
	t.Parallel()

	kit := newKit(t, newFixture(t))

	de, err := kit.Renderer("de")
	require.NoError(t, err)
	for _, locale := range []string{"de_aa", "de_ab", "de-DE", "de_zz", "de-CH,fr;q=0.5"} {
		r, err := kit.Renderer(locale)
		require.NoError(t, err)
		require.Same(t, de, r, locale)
	}

	at, err := kit.Renderer("de_at")
	require.NoError(t, err)
	require.NotSame(t, de, at)

	def, err := kit.Renderer("en_us")
	require.NoError(t, err)
	unknown, err := kit.Renderer("fr_fr")
	require.NoError(t, err)
	require.Same(t, def, unknown)
}

func TestKit_Render(t *testing.T) {
	t.Parallel()

	kit := newKit(t, newFixture(t))

	tests := []struct {
		name     string
		locale   string
		expected string
	}{
		{"default locale", "en_us", "<main><h1>Hello, Ann!</h1><footer>Bye</footer></main>"},
		{"language bucket", "de_de", "<main><h1>Hallo, Ann!</h1><footer>Servus</footer></main>"},
		{"locale bucket", "de-AT", "<main><h1>Hallo, Ann!</h1><footer>Servus</footer></main>"},
		{"unknown locale falls back", "fr_fr", "<main><h1>Hello, Ann!</h1><footer>Bye</footer></main>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := kit.RenderWithLayout(tt.locale, "main", "index", map[string]any{"name": "Ann"})
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("plural helper", func(t *testing.T) {
		t.Parallel()
		out, err := kit.Render("en", "items", map[string]any{"count": 2})
		require.NoError(t, err)
		require.Equal(t, "2 items", out)
	})

	t.Run("default helpers", func(t *testing.T) {
		t.Parallel()
		out, err := kit.Render("en", "shared", map[string]any{"text": "**hi**"})
		require.NoError(t, err)
		require.Contains(t, out, "<strong>hi</strong>")
	})

	t.Run("missing page", func(t *testing.T) {
		t.Parallel()
		_, err := kit.Render("en", "nope", nil)
		require.ErrorIs(t, err, render.ErrTemplateNotFound)
	})

	t.Run("custom helpers override defaults", func(t *testing.T) {
		t.Parallel()
		custom := newKit(t, newFixture(t), internal.WithHelpers(helpers.Map{
			"md": func(v any) string { return "custom" },
		}))
		out, err := custom.Render("en", "shared", map[string]any{"text": "x"})
		require.NoError(t, err)
		require.Equal(t, "custom", out)
	})
}

func TestKit_Messages(t *testing.T) {
	t.Parallel()

	kit := newKit(t, newFixture(t))

	require.Equal(t, "Hallo, {{name}}!", kit.Messages("de_at")["greeting"])
	require.Equal(t, "Servus", kit.Messages("de_at")["farewell"])
	require.ElementsMatch(t, []string{"en_us", "en", "de", "de_at"}, kit.Bundles().Tags())

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "fr-CA,de;q=0.8")
	locale, msgs := kit.MessagesForRequest(r)
	require.Equal(t, "de", locale)
	require.Equal(t, "Hallo, {{name}}!", msgs["greeting"])

	locale, msgs = kit.MessagesForRequest(nil)
	require.Equal(t, "en_us", locale)
	require.Equal(t, "Bye", msgs["farewell"])
}

func TestKit_Reload(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var reloads atomic.Int32
	kit := newKit(t, f, internal.WithOnReload(func(*internal.Kit) { reloads.Add(1) }))

	out, err := kit.Render("en", "override", nil)
	require.NoError(t, err)
	require.Equal(t, "views", out)

	writeFiles(t, f.views, map[string]string{"pages/override.hbs": "changed"})
	writeFiles(t, f.messages, map[string]string{"messages-en.json5": `{farewell: "Later"}`})

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, kit.Reload(context.Background()))
		}()
	}
	wg.Wait()
	require.GreaterOrEqual(t, reloads.Load(), int32(1))

	out, err = kit.Render("en", "override", nil)
	require.NoError(t, err)
	require.Equal(t, "changed", out)
	require.Equal(t, "Later", kit.Messages("en")["farewell"])
	require.Equal(t, "Bye", kit.Messages("en_us")["farewell"])

	t.Run("keeps data on failure", func(t *testing.T) {
		writeFiles(t, f.messages, map[string]string{"broken-fr.json5": "{"})
		require.Error(t, kit.Reload(context.Background()))

		out, err := kit.Render("en", "override", nil)
		require.NoError(t, err)
		require.Equal(t, "changed", out)
	})

	t.Run("honours context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, kit.Reload(ctx), context.Canceled)
	})
}

func TestKit_Watch(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	kit := newKit(t, f, internal.WithWatchDebounce(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- kit.Watch(ctx) }()

	require.Eventually(t, func() bool {
		writeFiles(t, f.views, map[string]string{"pages/override.hbs": "watched"})
		out, err := kit.Render("en", "override", nil)
		return err == nil && strings.TrimSpace(out) == "watched"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	kit, err := internal.New(internal.WithConfig(internal.Config{
		TemplateDirs:  []string{f.views},
		MessageDirs:   []string{f.messages},
		DefaultLocale: "DE",
	}))
	require.NoError(t, err)
	require.Equal(t, "de", kit.DefaultLocale())

	out, err := kit.Render("", "index", map[string]any{"name": "Ann"})
	require.NoError(t, err)
	require.Equal(t, "<h1>Hallo, Ann!</h1><footer>Bye</footer>", out)
}

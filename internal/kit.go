package internal

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/i18n"
	"github.com/dmitrymomot/hbkit/pkg/logger"
	"github.com/dmitrymomot/hbkit/pkg/render"
	"github.com/dmitrymomot/hbkit/pkg/templates"
)

// Kit loads templates and message bundles and renders pages per locale.
// It is safe for concurrent use.
type Kit struct {
	templateDirs    []string
	templateSubdirs []string
	templatePattern string
	messageDirs     []string
	defaultLocale   string
	watchDebounce   time.Duration
	helpers         helpers.Map
	logger          *slog.Logger
	onReload        []func(*Kit)

	pattern *regexp.Regexp
	loader  *i18n.MessageLoader
	reload  singleflight.Group

	mu        sync.RWMutex
	templates templates.Map
	renderers map[string]*render.Renderer
}

// New creates a kit and loads everything it is configured with.
//
// Example:
//
//	kit, err := hbkit.New(
//	    hbkit.WithTemplateDirs("./views", "./vendor/views"),
//	    hbkit.WithMessageDirs("./messages"),
//	    hbkit.WithLogger(log),
//	)
//	html, err := kit.RenderWithLayout("de_de", "main", "index", data)
func New(opts ...Option) (*Kit, error) {
	k := &Kit{
		defaultLocale: i18n.DefaultLocale,
		helpers:       make(helpers.Map),
		logger:        logger.NewNope(),
		renderers:     make(map[string]*render.Renderer),
	}
	for _, opt := range opts {
		opt(k)
	}

	if len(k.templateDirs) == 0 {
		return nil, ErrNoTemplateDirs
	}
	k.defaultLocale = i18n.NormalizeLocale(k.defaultLocale)

	if k.templatePattern != "" {
		p, err := regexp.Compile(k.templatePattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		k.pattern = p
	}

	// Invalid helpers fail construction.
	if err := helpers.NewRegistry().RegisterMap(k.helpers); err != nil {
		return nil, err
	}

	tpls, err := k.loadTemplates()
	if err != nil {
		return nil, err
	}
	k.templates = tpls

	loader, err := i18n.NewMessageLoader(i18n.MessageLoaderConfig{
		Logger:        k.logger,
		DefaultLocale: k.defaultLocale,
		MessageDirs:   k.messageDirs,
	})
	if err != nil {
		return nil, err
	}
	k.loader = loader

	k.logger.Info("hbkit loaded",
		slog.Int("template_dirs", len(k.templateDirs)),
		slog.Int("message_dirs", len(k.messageDirs)),
		slog.Any("locales", loader.Bundles().Tags()),
	)
	return k, nil
}

func (k *Kit) loadTemplates() (templates.Map, error) {
	opts := []templates.Option{templates.WithLogger(k.logger)}
	if len(k.templateSubdirs) > 0 {
		opts = append(opts, templates.WithSubdirs(k.templateSubdirs...))
	}
	if k.pattern != nil {
		opts = append(opts, templates.WithPattern(k.pattern))
	}
	return templates.LoadDirs(k.templateDirs, opts...)
}

// Templates returns a copy of the loaded template sources.
func (k *Kit) Templates() templates.Map {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.templates.Clone()
}

// Bundles returns a copy of every loaded message bundle.
func (k *Kit) Bundles() i18n.Store {
	return k.loader.Bundles()
}

// Loader returns the kit's message loader.
func (k *Kit) Loader() *i18n.MessageLoader {
	return k.loader
}

// DefaultLocale returns the normalized default locale.
func (k *Kit) DefaultLocale() string {
	return k.defaultLocale
}

// Messages derives the messages for locale.
func (k *Kit) Messages(locale string) i18n.Messages {
	return k.loader.MessagesFor(locale)
}

// MessagesForHeader negotiates a locale from an Accept-Language header and
// derives its messages.
func (k *Kit) MessagesForHeader(header string) (string, i18n.Messages) {
	return k.loader.MessagesForHeader(header)
}

// MessagesForRequest negotiates a locale from the request's Accept-Language
// header. A nil request yields the default locale.
func (k *Kit) MessagesForRequest(r *http.Request) (string, i18n.Messages) {
	if r == nil {
		return k.defaultLocale, k.loader.MessagesFor(k.defaultLocale)
	}
	return k.MessagesForHeader(r.Header.Get("Accept-Language"))
}

// Render renders pages/<page> for locale.
func (k *Kit) Render(locale, page string, ctx any) (string, error) {
	r, err := k.renderer(locale)
	if err != nil {
		return "", err
	}
	return r.Render(page, ctx)
}

// RenderWithLayout renders pages/<page> wrapped in layouts/<layout> for locale.
func (k *Kit) RenderWithLayout(locale, layout, page string, ctx any) (string, error) {
	r, err := k.renderer(locale)
	if err != nil {
		return "", err
	}
	return r.RenderWithLayout(layout, page, ctx)
}

// Renderer returns the renderer whose message helpers are bound to locale.
func (k *Kit) Renderer(locale string) (*render.Renderer, error) {
	return k.renderer(locale)
}

// renderer returns a renderer cached per serving bundle, so every locale
// served by the same bucket shares one renderer.
func (k *Kit) renderer(locale string) (*render.Renderer, error) {
	key := k.loader.BundleFor(locale)

	k.mu.RLock()
	if r, ok := k.renderers[key]; ok {
		k.mu.RUnlock()
		return r, nil
	}
	k.mu.RUnlock()

	k.mu.Lock()
	defer k.mu.Unlock()

	if r, ok := k.renderers[key]; ok {
		return r, nil
	}

	r, err := render.New(k.templates,
		render.WithLogger(k.logger.With(slog.String("locale", key))),
		render.WithHelpers(helpers.Merge(
			helpers.Defaults(),
			helpers.Messages(k.loader.MessagesFor(key), key),
			k.helpers,
		)),
	)
	if err != nil {
		return nil, err
	}
	k.renderers[key] = r
	return r, nil
}

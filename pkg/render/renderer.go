package render

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/logger"
	"github.com/dmitrymomot/hbkit/pkg/templates"
)

// BodyKey is the layout context key holding the rendered page.
const BodyKey = "body"

// DataKey holds the page context in a layout when it is not a map.
const DataKey = "data"

// Renderer renders Handlebars templates loaded by the templates package.
// Every partial is available to every template.
type Renderer struct {
	templates templates.Map
	helpers   helpers.Map
	logger    *slog.Logger

	// Partials are parsed once in New and shared by every template.
	partials map[string]*raymond.Template

	// Parsed templates, keyed by subdir and key.
	cache map[string]*raymond.Template

	mu sync.RWMutex
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHelpers adds helpers available to every template.
func WithHelpers(h helpers.Map) Option {
	return func(r *Renderer) {
		maps.Copy(r.helpers, h)
	}
}

// WithLogger sets the renderer logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a renderer over tpls. Helpers are validated and partials
// parsed up front.
func New(tpls templates.Map, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		templates: tpls.Clone(),
		helpers:   make(helpers.Map),
		logger:    logger.NewNope(),
		cache:     make(map[string]*raymond.Template),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := helpers.NewRegistry().RegisterMap(r.helpers); err != nil {
		return nil, err
	}

	partials := r.templates[templates.Partials]
	r.partials = make(map[string]*raymond.Template, len(partials))
	for key, source := range partials {
		tpl, err := raymond.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrParseFailed, templates.Partials, key, err)
		}
		r.partials[key] = tpl
	}
	return r, nil
}

// Templates returns the template sources the renderer was built with.
func (r *Renderer) Templates() templates.Map {
	return r.templates
}

// Has reports whether a template exists.
func (r *Renderer) Has(subdir, key string) bool {
	_, ok := r.templates.Get(subdir, key)
	return ok
}

// Render renders pages/<page> with ctx.
func (r *Renderer) Render(page string, ctx any) (string, error) {
	return r.RenderTemplate(templates.Pages, page, ctx)
}

// RenderWithLayout renders pages/<page>, then layouts/<layout> with the page
// output under "body". A map context is shared with the layout; any other
// context is exposed to it as "data".
func (r *Renderer) RenderWithLayout(layout, page string, ctx any) (string, error) {
	body, err := r.Render(page, ctx)
	if err != nil {
		return "", err
	}
	return r.RenderTemplate(templates.Layouts, layout, layoutContext(ctx, body))
}

// RenderTemplate renders any loaded template.
func (r *Renderer) RenderTemplate(subdir, key string, ctx any) (string, error) {
	tpl, err := r.template(subdir, key)
	if err != nil {
		return "", err
	}

	out, err := tpl.Exec(ctx)
	if err != nil {
		r.logger.Error("template render failed",
			slog.String("template", subdir+"/"+key),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %s/%s: %v", ErrRenderFailed, subdir, key, err)
	}
	return out, nil
}

// template returns a cached template or parses and caches it.
func (r *Renderer) template(subdir, key string) (*raymond.Template, error) {
	name := subdir + "/" + key

	r.mu.RLock()
	if tpl, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if tpl, ok := r.cache[name]; ok {
		return tpl, nil
	}

	source, ok := r.templates.Get(subdir, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseFailed, name, err)
	}
	tpl.RegisterHelpers(r.helpers)
	for key, partial := range r.partials {
		tpl.RegisterPartialTemplate(key, partial)
	}

	r.cache[name] = tpl
	r.logger.Debug("template parsed", slog.String("template", name))
	return tpl, nil
}

func layoutContext(ctx any, body string) map[string]any {
	var out map[string]any
	switch c := ctx.(type) {
	case map[string]any:
		out = maps.Clone(c)
	case nil:
	default:
		out = map[string]any{DataKey: ctx}
	}
	if out == nil {
		out = make(map[string]any, 1)
	}
	out[BodyKey] = raymond.SafeString(body)
	return out
}

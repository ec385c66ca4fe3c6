package component

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/hbkit/pkg/dom"
	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/i18n"
	"github.com/dmitrymomot/hbkit/pkg/render"
	"github.com/dmitrymomot/hbkit/pkg/templates"
)

// MessageAwareConfig configures a MessageAware component.
type MessageAwareConfig struct {
	Templates templates.Map
	Helpers   helpers.Map
	Loader    *i18n.MessageLoader
	Logger    *slog.Logger

	// Locale defaults to the loader's current locale.
	Locale string

	// Container scopes every selector.
	Container string
}

// MessageAware is a TemplateAware component whose templates can use the
// message and plural helpers for its locale.
type MessageAware struct {
	TemplateAware

	cfg    MessageAwareConfig
	locale string
	mu     sync.Mutex
}

// NewMessageAware builds the component and its renderer.
func NewMessageAware(doc *dom.Document, cfg MessageAwareConfig) (*MessageAware, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if cfg.Loader == nil {
		return nil, ErrNoMessageLoader
	}
	locale := cfg.Locale
	if locale == "" {
		locale = cfg.Loader.Locale()
	}

	c := &MessageAware{
		TemplateAware: TemplateAware{Document: doc, Container: cfg.Container},
		cfg:           cfg,
		locale:        i18n.NormalizeLocale(locale),
	}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Locale returns the component locale.
func (c *MessageAware) Locale() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locale
}

// SetLocale switches the locale and rebuilds the renderer.
func (c *MessageAware) SetLocale(locale string) error {
	c.mu.Lock()
	c.locale = i18n.NormalizeLocale(locale)
	c.mu.Unlock()
	return c.Refresh()
}

// Refresh rebuilds the renderer from the loader's current bundles.
// Call it after the loader reloads.
func (c *MessageAware) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := c.cfg.Loader.MessagesFor(c.locale)
	r, err := render.New(c.cfg.Templates,
		render.WithLogger(c.cfg.Logger),
		render.WithHelpers(helpers.Merge(c.cfg.Helpers, helpers.Messages(msgs, c.locale))),
	)
	if err != nil {
		return err
	}
	c.Renderer = r
	return nil
}

// RenderMarkup renders template with the component's current renderer.
func (c *MessageAware) RenderMarkup(selector, template string, model any, manipulator dom.Manipulator) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.TemplateAware.RenderMarkup(selector, template, model, manipulator)
}

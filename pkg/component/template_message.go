package component

import (
	"sync"

	"github.com/dmitrymomot/hbkit/pkg/dom"
)

// DefaultMessageTemplate is the page rendered by a TemplateMessage by default.
const DefaultMessageTemplate = "common-message"

// Config configures a TemplateMessage.
type Config struct {
	// Template is the page to render. Defaults to DefaultMessageTemplate.
	Template string

	// Manipulator defaults to dom.HTML, replacing the contents of the target.
	Manipulator dom.Manipulator

	// Selector is relative to the container. Empty targets the container itself.
	Selector string
}

// TemplateMessage displays its model using a single named template.
// Every model change re-renders the whole template.
type TemplateMessage struct {
	TemplateAware

	cfg   Config
	model any
	mu    sync.Mutex
}

// NewTemplateMessage creates a message component rendering into view.
func NewTemplateMessage(view TemplateAware, cfg Config) *TemplateMessage {
	if cfg.Template == "" {
		cfg.Template = DefaultMessageTemplate
	}
	if cfg.Manipulator == "" {
		cfg.Manipulator = dom.HTML
	}
	return &TemplateMessage{TemplateAware: view, cfg: cfg}
}

// RenderInitialMarkup renders the current model.
func (c *TemplateMessage) RenderInitialMarkup() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render()
}

// SetModel replaces the model and refreshes the display.
func (c *TemplateMessage) SetModel(model any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
	return c.render()
}

// Model returns the current model.
func (c *TemplateMessage) Model() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

func (c *TemplateMessage) render() error {
	return c.RenderMarkup(c.cfg.Selector, c.cfg.Template, c.model, c.cfg.Manipulator)
}

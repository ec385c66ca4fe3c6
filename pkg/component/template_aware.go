package component

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/hbkit/pkg/dom"
)

// Renderer renders a named page template.
type Renderer interface {
	Render(page string, ctx any) (string, error)
}

// TemplateAware renders templates into a container element of a document.
type TemplateAware struct {
	Renderer Renderer
	Document *dom.Document

	// Container scopes every selector. Empty means the document body.
	Container string
}

// RenderMarkup renders template with model and inserts the result at
// selector (relative to the container) using manipulator.
func (c *TemplateAware) RenderMarkup(selector, template string, model any, manipulator dom.Manipulator) error {
	if c.Renderer == nil {
		return ErrNoRenderer
	}
	if c.Document == nil {
		return ErrNoDocument
	}

	markup, err := c.Renderer.Render(template, model)
	if err != nil {
		return fmt.Errorf("component: rendering %q: %w", template, err)
	}
	return c.Document.ApplyWithin(
		strings.TrimSpace(c.Container),
		strings.TrimSpace(selector),
		markup,
		manipulator,
	)
}

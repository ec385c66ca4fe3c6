package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML document that rendered markup can be inserted into.
// It is not safe for concurrent use.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Apply inserts markup into every element matching selector using m.
// An empty selector targets the body.
func (d *Document) Apply(selector, markup string, m Manipulator) error {
	if selector == "" {
		selector = "body"
	}
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}
	return apply(sel, markup, m)
}

// ApplyWithin is Apply with selector matched among the descendants of the
// elements matching container. An empty container behaves like Apply and an
// empty selector targets the container elements themselves.
func (d *Document) ApplyWithin(container, selector, markup string, m Manipulator) error {
	if container == "" {
		return d.Apply(selector, markup, m)
	}
	sel := d.doc.Find(container)
	if sel.Length() == 0 {
		return fmt.Errorf("%w: %q", ErrNoMatch, container)
	}
	if selector != "" {
		sel = sel.Find(selector)
		if sel.Length() == 0 {
			return fmt.Errorf("%w: %q within %q", ErrNoMatch, selector, container)
		}
	}
	return apply(sel, markup, m)
}

func apply(sel *goquery.Selection, markup string, m Manipulator) error {
	switch m {
	case HTML, "":
		sel.SetHtml(markup)
	case Append:
		sel.AppendHtml(markup)
	case Prepend:
		sel.PrependHtml(markup)
	case Before:
		sel.BeforeHtml(markup)
	case After:
		sel.AfterHtml(markup)
	case ReplaceWith:
		sel.ReplaceWithHtml(markup)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownManipulator, m)
	}
	return nil
}

// Find returns the elements matching selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// InnerHTML returns the contents of the first element matching selector.
func (d *Document) InnerHTML(selector string) (string, error) {
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}
	return sel.First().Html()
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

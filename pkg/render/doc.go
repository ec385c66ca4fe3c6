// Package render renders Handlebars templates with github.com/aymerick/raymond.
//
// A Renderer is built from a templates.Map. Pages, layouts and partials are
// parsed on first use and cached; helpers are passed explicitly:
//
//	tpls, err := templates.LoadDirs([]string{"./views"})
//	r, err := render.New(tpls, render.WithHelpers(helpers.Defaults()))
//
//	html, err := r.RenderWithLayout("main", "index", map[string]any{"title": "Home"})
//
// The layout receives the rendered page as {{body}}. The page is not escaped a
// second time.
package render

// Package templates loads Handlebars template sources from one or more
// template roots.
//
// A template root holds up to three subdirectories:
//
//	layouts/main.hbs
//	pages/index.handlebars
//	partials/nav.hbs
//
// Each file matching DefaultPattern becomes an entry keyed by its name without
// extension. When several roots define the same key in the same subdirectory,
// the root listed first wins, so application templates can override those of
// a shared package:
//
//	m, err := templates.LoadDirs([]string{"./views", "./vendor/views"})
//	src, ok := m.Get(templates.Pages, "index")
package templates

// Package hbkit renders Handlebars templates with locale-aware messages.
//
// A kit loads layouts, pages and partials from one or more template roots and
// message bundles from one or more message directories, then renders pages
// for a locale with the message helpers bound to that locale's messages.
//
// # Quick Start
//
//	kit, err := hbkit.New(
//	    hbkit.WithTemplateDirs("./views"),
//	    hbkit.WithMessageDirs("./messages"),
//	    hbkit.WithLogger(logger.New()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := kit.RenderWithLayout("de_de", "main", "index", map[string]any{
//	    "user": map[string]any{"name": "Ann"},
//	})
//
// # Template Roots
//
// Each root may hold layouts/, pages/ and partials/ with *.hbs or
// *.handlebars files. When roots define the same template, the first root
// wins:
//
//	hbkit.WithTemplateDirs("./views", "./vendor/ui/views")
//
// # Message Bundles
//
// Bundle file names select their locale: messages-en_us.json5 is the en_us
// locale, messages-en.json is the en language and messages.json5 is the
// default locale. Rendering for "en_gb" overlays the default, "en" and
// "en_gb" messages in that order.
//
// Inside templates:
//
//	{{message "welcome" name=user.name}}
//	{{plural "items" cart.count}}
//
// # Configuration
//
// LoadConfig reads HBKIT_TEMPLATE_DIRS, HBKIT_MESSAGE_DIRS,
// HBKIT_DEFAULT_LOCALE and friends from the environment:
//
//	cfg, err := hbkit.LoadConfig()
//	kit, err := hbkit.New(hbkit.WithConfig(cfg))
//
// # Reloading
//
// Reload re-reads everything; concurrent calls share one reload. Watch
// reloads on file changes until its context is done:
//
//	go kit.Watch(ctx)
package hbkit

// Package middlewares provides net/http middleware for serving localized pages.
//
// # Messages
//
// Messages negotiates the request locale and stores the derived messages in
// the request context. By default the "lang" cookie is consulted before the
// Accept-Language header:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    locale := middlewares.GetLocale(r.Context())
//	    html, err := kit.RenderWithLayout(locale, "main", "index", nil)
//	    // ...
//	})
//
//	handler := middlewares.Messages(kit)(mux)
//
// Custom sources replace the defaults:
//
//	middlewares.Messages(kit, middlewares.WithLocaleSources(
//	    middlewares.FromQuery("locale"),
//	    middlewares.FromAcceptLanguage(),
//	))
package middlewares

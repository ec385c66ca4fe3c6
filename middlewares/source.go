package middlewares

import "net/http"

// LocaleSource reads a locale preference from a request.
// Returns the value and true if found, or ("", false) if not present.
type LocaleSource func(*http.Request) (string, bool)

// FromAcceptLanguage reads the Accept-Language header.
func FromAcceptLanguage() LocaleSource {
	return FromHeader("Accept-Language")
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

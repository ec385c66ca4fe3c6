package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/hbkit/pkg/i18n"
	"github.com/dmitrymomot/hbkit/pkg/logger"
)

// DefaultLocaleCookie is the cookie consulted before Accept-Language.
const DefaultLocaleCookie = "lang"

// MessageSource negotiates a locale from an Accept-Language style preference
// list and derives its messages. Both *i18n.MessageLoader and *hbkit.Kit
// implement it.
type MessageSource interface {
	MessagesForHeader(header string) (string, i18n.Messages)
}

type (
	localeKey   struct{}
	messagesKey struct{}
)

// MessagesConfig configures the Messages middleware.
type MessagesConfig struct {
	Sources    []LocaleSource
	sourcesSet bool
}

// MessagesOption configures MessagesConfig.
type MessagesOption func(*MessagesConfig)

// WithLocaleSources replaces the default sources (lang cookie, then
// Accept-Language). Earlier sources take precedence.
func WithLocaleSources(sources ...LocaleSource) MessagesOption {
	return func(cfg *MessagesConfig) {
		cfg.Sources = sources
		cfg.sourcesSet = true
	}
}

// Messages returns middleware that negotiates the request locale, derives its
// messages and stores both in the request context. The locale is also added
// to the context for logger.LocaleExtractor.
func Messages(source MessageSource, opts ...MessagesOption) func(http.Handler) http.Handler {
	if source == nil {
		panic("middlewares: message source is not provided")
	}

	cfg := &MessagesConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.sourcesSet {
		cfg.Sources = []LocaleSource{
			FromCookie(DefaultLocaleCookie),
			FromAcceptLanguage(),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, msgs := source.MessagesForHeader(preferences(r, cfg.Sources))

			ctx := context.WithValue(r.Context(), localeKey{}, locale)
			ctx = context.WithValue(ctx, messagesKey{}, msgs)
			ctx = logger.WithLocale(ctx, locale)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// preferences joins every source's value into one preference list, keeping
// source order for equal quality.
func preferences(r *http.Request, sources []LocaleSource) string {
	values := make([]string, 0, len(sources))
	for _, src := range sources {
		if v, ok := src(r); ok && v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, ",")
}

// GetLocale returns the negotiated locale.
// Returns an empty string if the Messages middleware is not used.
func GetLocale(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return ""
}

// GetMessages returns the derived messages.
// Returns nil if the Messages middleware is not used.
func GetMessages(ctx context.Context) i18n.Messages {
	if v, ok := ctx.Value(messagesKey{}).(i18n.Messages); ok {
		return v
	}
	return nil
}

// GetTranslator returns a translator over the request's messages.
func GetTranslator(ctx context.Context, opts ...i18n.TranslatorOption) *i18n.Translator {
	return i18n.NewTranslator(GetMessages(ctx), GetLocale(ctx), opts...)
}

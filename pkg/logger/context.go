package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type (
	localeKey   struct{}
	templateKey struct{}
)

// WithLocale stores the locale being served in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// WithTemplate stores the template being rendered in ctx.
func WithTemplate(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, templateKey{}, name)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(localeKey{}).(string)
	return v, ok && v != ""
}

// LocaleExtractor adds a "locale" attribute when one is stored in the context.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := LocaleFromContext(ctx); ok {
		return slog.String("locale", v), true
	}
	return slog.Attr{}, false
}

// TemplateExtractor adds a "template" attribute when one is stored in the context.
func TemplateExtractor(ctx context.Context) (slog.Attr, bool) {
	if ctx == nil {
		return slog.Attr{}, false
	}
	if v, ok := ctx.Value(templateKey{}).(string); ok && v != "" {
		return slog.String("template", v), true
	}
	return slog.Attr{}, false
}

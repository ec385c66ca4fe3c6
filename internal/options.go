package internal

import (
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/logger"
)

// Option configures the kit.
type Option func(*Kit)

// WithTemplateDirs sets the template roots, highest precedence first.
func WithTemplateDirs(dirs ...string) Option {
	return func(k *Kit) {
		k.templateDirs = append(k.templateDirs, dirs...)
	}
}

// WithTemplateSubdirs overrides the subdirectories read from each template root.
func WithTemplateSubdirs(subdirs ...string) Option {
	return func(k *Kit) {
		k.templateSubdirs = subdirs
	}
}

// WithTemplatePattern sets the file name pattern for templates. The first
// capture group is the template key.
func WithTemplatePattern(pattern string) Option {
	return func(k *Kit) {
		k.templatePattern = pattern
	}
}

// WithMessageDirs sets the message bundle directories.
func WithMessageDirs(dirs ...string) Option {
	return func(k *Kit) {
		k.messageDirs = append(k.messageDirs, dirs...)
	}
}

// WithDefaultLocale sets the locale used for unclassified bundles and as fallback.
func WithDefaultLocale(locale string) Option {
	return func(k *Kit) {
		if locale != "" {
			k.defaultLocale = locale
		}
	}
}

// WithHelpers adds helpers available to every template.
// They override the built-in helpers of the same name.
//
// Example:
//
//	hbkit.New(
//	    hbkit.WithTemplateDirs("./views"),
//	    hbkit.WithHelpers(helpers.Map{"upper": strings.ToUpper}),
//	)
func WithHelpers(h helpers.Map) Option {
	return func(k *Kit) {
		maps.Copy(k.helpers, h)
	}
}

// WithLogger sets the kit logger.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kit) {
		if l != nil {
			k.logger = l
		}
	}
}

// WithWatchDebounce sets how long Watch waits for changes to settle.
func WithWatchDebounce(d time.Duration) Option {
	return func(k *Kit) {
		k.watchDebounce = d
	}
}

// WithConfig applies settings loaded with LoadConfig. Empty fields are ignored.
func WithConfig(cfg Config) Option {
	return func(k *Kit) {
		k.templateDirs = append(k.templateDirs, cfg.TemplateDirs...)
		k.messageDirs = append(k.messageDirs, cfg.MessageDirs...)
		if len(cfg.TemplateSubdirs) > 0 {
			k.templateSubdirs = cfg.TemplateSubdirs
		}
		if cfg.TemplatePattern != "" {
			k.templatePattern = cfg.TemplatePattern
		}
		if cfg.DefaultLocale != "" {
			k.defaultLocale = cfg.DefaultLocale
		}
		if cfg.WatchDebounce > 0 {
			k.watchDebounce = cfg.WatchDebounce
		}
		if cfg.Log.Level != "" || cfg.Sentry.DSN != "" {
			k.logger = logger.NewWithSentry(cfg.Sentry, logger.FromConfig(cfg.Log)...)
		}
	}
}

// WithOnReload registers fn to run after every successful Reload.
func WithOnReload(fn func(*Kit)) Option {
	return func(k *Kit) {
		if fn != nil {
			k.onReload = append(k.onReload, fn)
		}
	}
}

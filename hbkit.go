package hbkit

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/hbkit/internal"
	"github.com/dmitrymomot/hbkit/pkg/helpers"
	"github.com/dmitrymomot/hbkit/pkg/i18n"
	"github.com/dmitrymomot/hbkit/pkg/templates"
)

// Type aliases - public API
type (
	// Kit loads templates and message bundles and renders pages per locale.
	Kit = internal.Kit

	// Option configures the kit.
	Option = internal.Option

	// Config holds kit settings read from HBKIT_* environment variables.
	Config = internal.Config

	// Messages is a nested message bundle.
	Messages = i18n.Messages

	// Store holds every loaded bundle keyed by locale or language.
	Store = i18n.Store

	// Templates holds template sources keyed by subdirectory and name.
	Templates = templates.Map

	// Helpers is a set of named template helpers.
	Helpers = helpers.Map
)

// Errors
var (
	ErrNoTemplateDirs = internal.ErrNoTemplateDirs
	ErrInvalidPattern = internal.ErrInvalidPattern
)

// New creates a kit and loads its templates and message bundles.
//
// Example:
//
//	kit, err := hbkit.New(
//	    hbkit.WithTemplateDirs("./views", "./vendor/views"),
//	    hbkit.WithMessageDirs("./messages"),
//	)
//	if err != nil {
//	    return err
//	}
//	html, err := kit.RenderWithLayout("en_us", "main", "index", data)
func New(opts ...Option) (*Kit, error) {
	return internal.New(opts...)
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	return internal.LoadConfig()
}

// WithTemplateDirs sets the template roots, highest precedence first.
func WithTemplateDirs(dirs ...string) Option {
	return internal.WithTemplateDirs(dirs...)
}

// WithTemplateSubdirs overrides the subdirectories read from each template root.
// Defaults to layouts, pages and partials.
func WithTemplateSubdirs(subdirs ...string) Option {
	return internal.WithTemplateSubdirs(subdirs...)
}

// WithTemplatePattern sets the template file name pattern. The first capture
// group becomes the template key.
func WithTemplatePattern(pattern string) Option {
	return internal.WithTemplatePattern(pattern)
}

// WithMessageDirs sets the message bundle directories.
func WithMessageDirs(dirs ...string) Option {
	return internal.WithMessageDirs(dirs...)
}

// WithDefaultLocale sets the fallback locale. Defaults to "en_us".
func WithDefaultLocale(locale string) Option {
	return internal.WithDefaultLocale(locale)
}

// WithHelpers adds template helpers. They override built-in helpers.
func WithHelpers(h Helpers) Option {
	return internal.WithHelpers(h)
}

// WithLogger sets the kit logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithWatchDebounce sets how long Watch waits for changes to settle.
func WithWatchDebounce(d time.Duration) Option {
	return internal.WithWatchDebounce(d)
}

// WithOnReload registers fn to run after every successful Reload.
func WithOnReload(fn func(*Kit)) Option {
	return internal.WithOnReload(fn)
}

// WithConfig applies settings loaded with LoadConfig.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

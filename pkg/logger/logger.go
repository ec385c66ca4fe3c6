package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	Level  string `env:"HBKIT_LOG_LEVEL" envDefault:"info"`
	Format string `env:"HBKIT_LOG_FORMAT" envDefault:"json"`
}

// Option configures a logger built by New.
type Option func(*options)

type options struct {
	writer     io.Writer
	level      slog.Level
	text       bool
	extractors []ContextExtractor
}

// WithWriter sets the log destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithTextFormat switches from JSON to logfmt-style text output.
func WithTextFormat() Option {
	return func(o *options) {
		o.text = true
	}
}

// WithExtractors adds context extractors run on every log call.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// FromConfig converts a Config into options.
func FromConfig(cfg Config) []Option {
	opts := []Option{WithLevel(ParseLevel(cfg.Level))}
	if strings.EqualFold(cfg.Format, "text") {
		opts = append(opts, WithTextFormat())
	}
	return opts
}

// New creates a logger. Locale and template extractors are always installed so
// rendering and message loading calls carry them when present in the context.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(NewContextHandler(o.handler(), o.allExtractors()...))
}

func newOptions(opts []Option) *options {
	o := &options{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.text {
		return slog.NewTextHandler(o.writer, ho)
	}
	return slog.NewJSONHandler(o.writer, ho)
}

func (o *options) allExtractors() []ContextExtractor {
	return append([]ContextExtractor{LocaleExtractor, TemplateExtractor}, o.extractors...)
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown values map to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

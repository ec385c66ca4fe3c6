package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"HBKIT_SENTRY_DSN"`
	Environment string `env:"HBKIT_SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored in Sentry as a log entry.
	// Errors always create issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and reports to Sentry.
// If DSN is empty or Sentry fails to initialize, only local logging is enabled.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	o := newOptions(opts)
	local := o.handler()

	if cfg.DSN == "" {
		return slog.New(NewContextHandler(local, o.allExtractors()...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(local, o.allExtractors()...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(fanoutHandler{local, remote}, o.allExtractors()...))
}

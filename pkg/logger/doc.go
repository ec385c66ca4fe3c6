// Package logger builds log/slog loggers for template loading and rendering.
//
// Loggers write JSON (or text) to stdout and run context extractors on every
// call. The locale and template extractors are always installed:
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//
//	ctx := logger.WithLocale(context.Background(), "en_us")
//	ctx = logger.WithTemplate(ctx, "pages/index")
//	log.InfoContext(ctx, "rendered")
//	// {"level":"INFO","msg":"rendered","locale":"en_us","template":"pages/index"}
//
// NewWithSentry additionally reports warnings and errors to Sentry and falls
// back to local output when no DSN is configured. NewNope discards everything
// and is the default for every package that accepts a logger.
package logger

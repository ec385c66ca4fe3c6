package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hbkit/pkg/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("adds locale and template from context", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf))

		ctx := logger.WithTemplate(logger.WithLocale(context.Background(), "en_us"), "pages/index")
		log.InfoContext(ctx, "rendered")

		entry := decodeLine(t, &buf)
		require.Equal(t, "rendered", entry["msg"])
		require.Equal(t, "en_us", entry["locale"])
		require.Equal(t, "pages/index", entry["template"])
	})

	t.Run("omits attributes missing from context", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf))
		log.Info("plain")

		entry := decodeLine(t, &buf)
		require.NotContains(t, entry, "locale")
		require.NotContains(t, entry, "template")
	})

	t.Run("runs custom extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithWriter(&buf),
			logger.WithExtractors(nil, func(context.Context) (slog.Attr, bool) {
				return slog.String("component", "renderer"), true
			}),
		)
		log.Info("x")
		require.Equal(t, "renderer", decodeLine(t, &buf)["component"])
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		require.Zero(t, buf.Len())
	})

	t.Run("text format from config", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		opts := append(logger.FromConfig(logger.Config{Level: "debug", Format: "text"}), logger.WithWriter(&buf))
		log := logger.New(opts...)
		log.Debug("hello", slog.String("k", "v"))
		require.Contains(t, buf.String(), "msg=hello")
		require.Contains(t, buf.String(), "k=v")
	})

	t.Run("keeps extractors after WithAttrs and WithGroup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf)).With(slog.String("svc", "hbkit")).WithGroup("g")
		log.InfoContext(logger.WithLocale(context.Background(), "fr"), "x", slog.Int("n", 1))

		entry := decodeLine(t, &buf)
		require.Equal(t, "hbkit", entry["svc"])
		group, ok := entry["g"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "fr", group["locale"])
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("loud"))
}

func TestNewWithSentryWithoutDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithWriter(&buf))
	log.Error("boom", slog.String("error", errors.New("x").Error()))
	require.Equal(t, "boom", decodeLine(t, &buf)["msg"])
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded")
}

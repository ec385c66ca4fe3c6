package internal

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/hbkit/pkg/render"
	"github.com/dmitrymomot/hbkit/pkg/watcher"
)

// Reload re-reads templates and message bundles. Concurrent calls share a
// single reload. On error the previously loaded data stays in use.
func (k *Kit) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch := k.reload.DoChan("reload", func() (any, error) {
		return nil, k.doReload()
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (k *Kit) doReload() error {
	tpls, err := k.loadTemplates()
	if err != nil {
		k.logger.Error("template reload failed", slog.String("error", err.Error()))
		return err
	}
	if err := k.loader.Reload(); err != nil {
		k.logger.Error("message reload failed", slog.String("error", err.Error()))
		return err
	}

	k.mu.Lock()
	k.templates = tpls
	k.renderers = make(map[string]*render.Renderer)
	k.mu.Unlock()

	k.logger.Info("hbkit reloaded")
	for _, fn := range k.onReload {
		fn(k)
	}
	return nil
}

// Watch reloads the kit whenever a template or message file changes, until
// ctx is done.
func (k *Kit) Watch(ctx context.Context) error {
	w, err := watcher.New(k.watchDebounce,
		watcher.WithLogger(k.logger),
		watcher.WithFilter(watcher.NoHiddenFilter),
		watcher.WithFilter(watcher.AnyOf(k.isTemplate, watcher.MessageFilter)),
	)
	if err != nil {
		return err
	}
	if err := w.Add(slices.Concat(k.templateDirs, k.messageDirs)...); err != nil {
		_ = w.Close()
		return err
	}

	k.logger.Info("watching for changes", slog.Any("paths", w.WatchList()))

	return w.Run(ctx, func(events []watcher.Event) error {
		for _, e := range events {
			k.logger.Debug("file changed", slog.String("path", e.Path), slog.String("type", e.Type.String()))
		}
		return k.Reload(ctx)
	})
}

func (k *Kit) isTemplate(path string) bool {
	if k.pattern != nil {
		return k.pattern.MatchString(path)
	}
	return watcher.TemplateFilter(path)
}

// Package watcher reports batched file changes using fsnotify.
//
// Changes are debounced: a batch is delivered once no new change has arrived
// for the configured delay, with one event per path.
//
//	w, err := watcher.New(200*time.Millisecond,
//		watcher.WithFilter(watcher.NoHiddenFilter),
//		watcher.WithFilter(watcher.AnyOf(watcher.TemplateFilter, watcher.MessageFilter)),
//	)
//	if err := w.Add("./views", "./messages"); err != nil {
//		return err
//	}
//	return w.Run(ctx, func(events []watcher.Event) error {
//		return kit.Reload(ctx)
//	})
package watcher

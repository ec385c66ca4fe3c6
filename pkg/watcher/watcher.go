package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/hbkit/pkg/logger"
)

// DefaultDebounce is used when New is given a non-positive delay.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches directories recursively and reports batched changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	filters  []Filter
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithFilter adds a filter. A path must pass every filter to be reported.
func WithFilter(f Filter) Option {
	return func(w *Watcher) {
		if f != nil {
			w.filters = append(w.filters, f)
		}
	}
}

// WithLogger sets the watcher logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher that delivers changes once no new change has arrived
// for debounce.
func New(debounce time.Duration, opts ...Option) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Add watches paths. Directories are watched recursively; missing paths are skipped.
func (w *Watcher) Add(paths ...string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug("skipping missing watch path", slog.String("path", p))
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatch, p, err)
		}
		if !info.IsDir() {
			if err := w.fsw.Add(p); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrWatch, p, err)
			}
			continue
		}
		if err := w.addTree(p); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && !NoHiddenFilter(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatch, path, err)
		}
		return nil
	})
}

// WatchList returns the watched paths.
func (w *Watcher) WatchList() []string {
	return w.fsw.WatchList()
}

// Run delivers batches of changes to onChange until ctx is done. Handler
// errors are logged and do not stop the watcher. Run closes the watcher
// before returning.
func (w *Watcher) Run(ctx context.Context, onChange func([]Event) error) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending []Event

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-w.fsw.Events:
			if !ok {
				return ErrClosed
			}
			if e.Has(fsnotify.Create) {
				if info, err := os.Stat(e.Name); err == nil && info.IsDir() {
					if err := w.addTree(e.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							slog.String("path", e.Name),
							slog.String("error", err.Error()),
						)
					}
					continue
				}
			}
			if !w.accept(e.Name) {
				continue
			}
			pending = append(pending, eventFrom(e))
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrClosed
			}
			w.logger.Warn("file watcher error", slog.String("error", err.Error()))

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := coalesce(pending)
			pending = nil
			w.logger.Debug("files changed", slog.Int("count", len(batch)))
			if err := onChange(batch); err != nil {
				w.logger.Error("file change handler failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Close stops watching. It is only needed when Run is never called.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) accept(path string) bool {
	for _, f := range w.filters {
		if !f(path) {
			return false
		}
	}
	return true
}

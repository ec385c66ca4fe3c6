package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/hbkit/pkg/logger"
)

// Option configures template loading.
type Option func(*config)

type config struct {
	pattern *regexp.Regexp
	logger  *slog.Logger
	subdirs []string
}

// WithSubdirs overrides the subdirectories scanned in each root.
func WithSubdirs(subdirs ...string) Option {
	return func(c *config) {
		if len(subdirs) > 0 {
			c.subdirs = subdirs
		}
	}
}

// WithPattern overrides the file pattern. Its first capture group is the template key.
func WithPattern(pattern *regexp.Regexp) Option {
	return func(c *config) {
		if pattern != nil {
			c.pattern = pattern
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// root is one template directory.
type root struct {
	fsys fs.FS
	name string
}

// LoadDirs loads every template found under the layouts, pages and partials
// subdirectories of roots.
//
// Roots are walked in reverse order, so a root listed earlier is applied later
// and overrides the same subdirectory/key from any root listed after it.
// Within one root subdirectory the first file in name order yielding a key
// wins ("card.handlebars" beats "card.hbs"). Missing subdirectories are skipped silently.
func LoadDirs(roots []string, opts ...Option) (Map, error) {
	rs := make([]root, 0, len(roots))
	for _, dir := range roots {
		rs = append(rs, root{fsys: os.DirFS(dir), name: dir})
	}
	return load(rs, opts...)
}

// LoadFS is LoadDirs over fs.FS roots, for embedded templates.
func LoadFS(roots []fs.FS, opts ...Option) (Map, error) {
	rs := make([]root, 0, len(roots))
	for i, fsys := range roots {
		rs = append(rs, root{fsys: fsys, name: fmt.Sprintf("fs[%d]", i)})
	}
	return load(rs, opts...)
}

func load(roots []root, opts ...Option) (Map, error) {
	cfg := &config{
		pattern: DefaultPattern,
		logger:  logger.NewNope(),
		subdirs: DefaultSubdirs,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	if cfg.pattern.NumSubexp() < 1 {
		return nil, ErrInvalidPattern
	}

	m := make(Map)
	for _, r := range slices.Backward(roots) {
		for _, subdir := range cfg.subdirs {
			if err := loadSubdir(cfg, r, subdir, m); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// loadSubdir overlays the templates of one root subdirectory onto m.
func loadSubdir(cfg *config, r root, subdir string, m Map) error {
	entries, err := fs.ReadDir(r.fsys, subdir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %q: %v", ErrReadDir, path.Join(r.name, subdir), err)
	}

	local := make(Map)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		matches := cfg.pattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}
		key := matches[1]
		if local.has(subdir, key) {
			cfg.logger.Debug("duplicate template key in directory, skipping",
				slog.String("file", path.Join(r.name, subdir, entry.Name())),
				slog.String("key", key),
			)
			continue
		}

		src, err := fs.ReadFile(r.fsys, path.Join(subdir, entry.Name()))
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrReadFile, path.Join(r.name, subdir, entry.Name()), err)
		}
		local.set(subdir, key, string(src))
	}

	for key, src := range local[subdir] {
		if m.has(subdir, key) {
			cfg.logger.Debug("template overridden",
				slog.String("subdir", subdir),
				slog.String("key", key),
				slog.String("root", r.name),
			)
		}
		m.put(subdir, key, src)
	}

	return nil
}

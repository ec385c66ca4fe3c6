package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/hbkit/pkg/logger"
)

var (
	// localeFilePattern matches "name-xx_yy.json5" and captures the locale.
	localeFilePattern = regexp.MustCompile(`.+[-_]([a-z]{2}[-_][a-z]{2})\.json5?`)

	// languageFilePattern matches "name-xx.json5" and captures the language.
	languageFilePattern = regexp.MustCompile(`.+[-_]([a-z]{2})\.json5?`)
)

// LoadOption configures message bundle loading.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report skipped directories.
func WithLogger(l *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// bundleRoot is one message directory.
type bundleRoot struct {
	fsys fs.FS
	name string
}

// bundleFile is a message file found in a bundleRoot.
type bundleFile struct {
	fsys fs.FS
	name string // file name within fsys
	path string // display path for errors
}

// fileGroups keeps files grouped by tag in order of first appearance.
type fileGroups struct {
	files map[string][]bundleFile
	order []string
}

func (g *fileGroups) add(tag string, f bundleFile) {
	if g.files == nil {
		g.files = make(map[string][]bundleFile)
	}
	if _, ok := g.files[tag]; !ok {
		g.order = append(g.order, tag)
	}
	g.files[tag] = append(g.files[tag], f)
}

// LoadMessageBundles loads every message bundle found in dirs and organizes
// them into a single Store keyed by locale and language.
//
// File convention (case-insensitive):
//
//	messages-en_us.json5  locale bundle ("en_us"), also merged into "en"
//	messages-en.json      language bundle ("en")
//	messages.json5        default locale bundle
//
// All locale files are merged first, then all language files, so explicit
// language data always wins over data inherited from locales. Unreadable
// directories are logged and skipped. A file that fails to parse aborts the load.
func LoadMessageBundles(dirs []string, defaultLocale string, opts ...LoadOption) (Store, error) {
	roots := make([]bundleRoot, 0, len(dirs))
	for _, dir := range dirs {
		roots = append(roots, bundleRoot{fsys: os.DirFS(dir), name: dir})
	}
	return loadBundles(roots, defaultLocale, opts...)
}

// LoadMessageBundlesFS is LoadMessageBundles over fs.FS roots, for embedded bundles.
func LoadMessageBundlesFS(roots []fs.FS, defaultLocale string, opts ...LoadOption) (Store, error) {
	br := make([]bundleRoot, 0, len(roots))
	for i, fsys := range roots {
		br = append(br, bundleRoot{fsys: fsys, name: fmt.Sprintf("fs[%d]", i)})
	}
	return loadBundles(br, defaultLocale, opts...)
}

func loadBundles(roots []bundleRoot, defaultLocale string, opts ...LoadOption) (Store, error) {
	cfg := &loadConfig{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(cfg)
	}
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	defaultLocale = NormalizeLocale(defaultLocale)

	var byLocale, byLanguage fileGroups

	for _, root := range roots {
		entries, err := fs.ReadDir(root.fsys, ".")
		if err != nil {
			cfg.logger.Warn("skipping unreadable message directory",
				slog.String("dir", root.name),
				slog.String("error", err.Error()),
			)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			f := bundleFile{fsys: root.fsys, name: entry.Name(), path: path.Join(root.name, entry.Name())}

			lower := strings.ToLower(entry.Name())
			if m := localeFilePattern.FindStringSubmatch(lower); m != nil {
				byLocale.add(NormalizeLocale(m[1]), f)
			} else if m := languageFilePattern.FindStringSubmatch(lower); m != nil {
				byLanguage.add(NormalizeLocale(m[1]), f)
			} else {
				byLocale.add(defaultLocale, f)
			}
		}
	}

	store := make(Store)

	// Locales first, propagating their data into the language bucket as well.
	for _, locale := range byLocale.order {
		lang := LanguageOf(locale)
		for _, f := range byLocale.files[locale] {
			data, err := parseBundleFile(f)
			if err != nil {
				return nil, err
			}
			store[locale] = DeepMerge(store[locale], data)
			if lang != locale {
				store[lang] = DeepMerge(store[lang], data)
			}
		}
	}

	// Languages last, overwriting anything inherited from locales.
	for _, lang := range byLanguage.order {
		for _, f := range byLanguage.files[lang] {
			data, err := parseBundleFile(f)
			if err != nil {
				return nil, err
			}
			store[lang] = DeepMerge(store[lang], data)
		}
	}

	cfg.logger.Debug("message bundles loaded", slog.Any("tags", store.Tags()))

	return store, nil
}

// parseBundleFile reads and decodes one bundle. YAML files are decoded as YAML,
// everything else as relaxed JSON.
func parseBundleFile(f bundleFile) (Messages, error) {
	raw, err := fs.ReadFile(f.fsys, f.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, f.path, err)
	}

	var data map[string]any
	switch strings.ToLower(path.Ext(f.name)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &data); err == nil {
			for k, v := range data {
				data[k] = stringKeys(v)
			}
		}
	default:
		err = json5.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, f.path, err)
	}

	return Messages(data), nil
}

// stringKeys rewrites the map[any]any values yaml.v3 produces for mappings
// with non-string keys into string-keyed maps, recursively.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = stringKeys(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = stringKeys(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = stringKeys(item)
		}
		return val
	default:
		return v
	}
}

package i18n

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/hbkit/pkg/logger"
)

// MessageLoaderConfig configures a MessageLoader.
type MessageLoaderConfig struct {
	// Logger receives skipped-directory warnings. Defaults to a no-op logger.
	Logger *slog.Logger

	// OnLoaded is called after every successful (re)load.
	OnLoaded func(*MessageLoader)

	// DefaultLocale is used for unclassified files and as the lowest precedence
	// tier. Defaults to DefaultLocale.
	DefaultLocale string

	// Locale is the initial locale. Defaults to DefaultLocale.
	Locale string

	// MessageDirs lists the directories to load bundles from.
	MessageDirs []string
}

// MessageLoader owns a loaded Store and the messages derived from it for the
// current locale. Changing the locale or reloading re-derives the messages.
type MessageLoader struct {
	bundles  Store
	messages Messages
	logger   *slog.Logger
	onLoaded func(*MessageLoader)

	defaultLocale string
	locale        string
	dirs          []string

	mu sync.RWMutex
}

// NewMessageLoader loads all bundles from cfg.MessageDirs and derives messages
// for the initial locale.
func NewMessageLoader(cfg MessageLoaderConfig) (*MessageLoader, error) {
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.Locale == "" {
		cfg.Locale = cfg.DefaultLocale
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNope()
	}

	l := &MessageLoader{
		logger:        cfg.Logger,
		onLoaded:      cfg.OnLoaded,
		defaultLocale: NormalizeLocale(cfg.DefaultLocale),
		locale:        NormalizeLocale(cfg.Locale),
		dirs:          append([]string(nil), cfg.MessageDirs...),
	}

	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads every message directory and re-derives the messages.
// On error the previously loaded bundles are kept.
func (l *MessageLoader) Reload() error {
	store, err := LoadMessageBundles(l.dirs, l.defaultLocale, WithLogger(l.logger))
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.bundles = store
	l.messages = Derive(l.locale, l.bundles, l.defaultLocale)
	l.mu.Unlock()

	if l.onLoaded != nil {
		l.onLoaded(l)
	}
	return nil
}

// SetLocale switches the current locale and re-derives the messages.
func (l *MessageLoader) SetLocale(locale string) {
	if locale == "" {
		locale = l.defaultLocale
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.locale = NormalizeLocale(locale)
	l.messages = Derive(l.locale, l.bundles, l.defaultLocale)
}

// Locale returns the current locale.
func (l *MessageLoader) Locale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locale
}

// DefaultLocale returns the configured default locale.
func (l *MessageLoader) DefaultLocale() string {
	return l.defaultLocale
}

// Messages returns the messages derived for the current locale.
// The returned map must not be modified.
func (l *MessageLoader) Messages() Messages {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.messages
}

// Bundles returns a copy of every loaded bundle.
func (l *MessageLoader) Bundles() Store {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bundles.Clone()
}

// MessagesFor derives messages for an arbitrary locale without changing the current one.
func (l *MessageLoader) MessagesFor(locale string) Messages {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Derive(locale, l.bundles, l.defaultLocale)
}

// MessagesForHeader negotiates a locale from an Accept-Language header and
// returns it along with its derived messages.
func (l *MessageLoader) MessagesForHeader(header string) (string, Messages) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	locale := NegotiateLocale(header, l.bundles, l.defaultLocale)
	return locale, Derive(locale, l.bundles, l.defaultLocale)
}

// BundleFor returns the tag of the bucket that serves locale: the locale
// itself when loaded, else its language, else the default locale.
// Locales with the same serving bucket derive identical messages.
func (l *MessageLoader) BundleFor(locale string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ServingBundle(locale, l.bundles, l.defaultLocale)
}

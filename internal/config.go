package internal

import (
	"time"

	"github.com/dmitrymomot/hbkit/pkg/config"
	"github.com/dmitrymomot/hbkit/pkg/logger"
)

// Config holds kit settings read from the environment.
type Config struct {
	TemplateDirs    []string      `env:"HBKIT_TEMPLATE_DIRS" envSeparator:","`
	TemplateSubdirs []string      `env:"HBKIT_TEMPLATE_SUBDIRS" envSeparator:"," envDefault:"layouts,pages,partials"`
	TemplatePattern string        `env:"HBKIT_TEMPLATE_PATTERN"`
	MessageDirs     []string      `env:"HBKIT_MESSAGE_DIRS" envSeparator:","`
	DefaultLocale   string        `env:"HBKIT_DEFAULT_LOCALE" envDefault:"en_us"`
	WatchDebounce   time.Duration `env:"HBKIT_WATCH_DEBOUNCE" envDefault:"100ms"`

	Log    logger.Config
	Sentry logger.SentryConfig
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

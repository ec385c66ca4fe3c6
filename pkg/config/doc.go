// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is loaded once on first use, then
// github.com/caarlos0/env/v11 parses struct tags:
//
//	type Config struct {
//		TemplateDirs  []string `env:"HBKIT_TEMPLATE_DIRS" envSeparator:","`
//		DefaultLocale string   `env:"HBKIT_DEFAULT_LOCALE" envDefault:"en_us"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Load caches one value per type. Parse skips the cache.
package config

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/hbkit"
	"github.com/dmitrymomot/hbkit/pkg/logger"
)

const envPrefix = "HBKIT"

// Config keys. Environment variables use the HBKIT_ prefix with dashes
// replaced by underscores, e.g. HBKIT_TEMPLATE_DIRS.
const (
	keyTemplateDirs    = "template-dirs"
	keyTemplateSubdirs = "template-subdirs"
	keyTemplatePattern = "template-pattern"
	keyMessageDirs     = "message-dirs"
	keyDefaultLocale   = "default-locale"
	keyLogLevel        = "log-level"
	keyLogFormat       = "log-format"
	keyWatchDebounce   = "watch-debounce"
	keySentryDSN       = "sentry-dsn"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "hbkit",
		Short: "Render Handlebars templates with localized messages",
		Long: `hbkit loads layouts, pages and partials from template directories and
message bundles from message directories, then renders pages for a locale.

Configuration is read from flags, HBKIT_* environment variables and
.hbkit.yml, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .hbkit.yml)")
	flags.StringSliceP(keyTemplateDirs, "t", nil, "template directories, highest precedence first")
	flags.StringSlice(keyTemplateSubdirs, nil, "template subdirectories (default layouts,pages,partials)")
	flags.String(keyTemplatePattern, "", "template file name pattern; the first capture group is the key")
	flags.StringSliceP(keyMessageDirs, "m", nil, "message bundle directories")
	flags.String(keyDefaultLocale, "en_us", "default locale")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "text", "log format (text, json)")
	flags.String(keySentryDSN, "", "report warnings and errors to Sentry")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		newRenderCmd(a),
		newMessagesCmd(a),
		newTemplatesCmd(a),
		newWatchCmd(a),
	)
	return root
}

// initConfig wires the config file and environment into viper.
func (a *app) initConfig() error {
	switch {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
	case os.Getenv("HBKIT_CONFIG_FILE") != "":
		a.v.SetConfigFile(os.Getenv("HBKIT_CONFIG_FILE"))
	default:
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".hbkit")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	opts := logger.FromConfig(logger.Config{
		Level:  a.v.GetString(keyLogLevel),
		Format: a.v.GetString(keyLogFormat),
	})
	return logger.NewWithSentry(
		logger.SentryConfig{DSN: a.v.GetString(keySentryDSN), Environment: "cli"},
		append(opts, logger.WithWriter(cmd.ErrOrStderr()))...,
	)
}

// newKit builds a kit from the resolved configuration.
func (a *app) newKit(cmd *cobra.Command, opts ...hbkit.Option) (*hbkit.Kit, error) {
	base := []hbkit.Option{
		hbkit.WithTemplateDirs(a.strings(keyTemplateDirs)...),
		hbkit.WithMessageDirs(a.strings(keyMessageDirs)...),
		hbkit.WithDefaultLocale(a.v.GetString(keyDefaultLocale)),
		hbkit.WithTemplatePattern(a.v.GetString(keyTemplatePattern)),
		hbkit.WithLogger(a.logger(cmd)),
	}
	if subdirs := a.strings(keyTemplateSubdirs); len(subdirs) > 0 {
		base = append(base, hbkit.WithTemplateSubdirs(subdirs...))
	}
	if d := a.v.GetDuration(keyWatchDebounce); d > 0 {
		base = append(base, hbkit.WithWatchDebounce(d))
	}
	return hbkit.New(append(base, opts...)...)
}

// strings reads a list value. Environment values are comma separated.
func (a *app) strings(key string) []string {
	var out []string
	for _, v := range a.v.GetStringSlice(key) {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

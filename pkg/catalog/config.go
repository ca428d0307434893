package catalog

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/bookmeta/pkg/config"
	"github.com/dmitrymomot/bookmeta/pkg/logger"
	"github.com/dmitrymomot/bookmeta/pkg/sanitizer"
)

// Config is the environment-driven configuration of a Checker.
type Config struct {
	Env       string `env:"BOOKMETA_ENV" envDefault:"development"`
	LogLevel  string `env:"BOOKMETA_LOG_LEVEL"`
	LogFormat string `env:"BOOKMETA_LOG_FORMAT"`

	TitleBlocklist []string `env:"BOOKMETA_TITLE_BLOCKLIST" envSeparator:"," envDefault:"Boaty McBoatface"`

	AllowedTags        []string `env:"BOOKMETA_HTML_ALLOWED_TAGS" envSeparator:"," envDefault:"b,i"`
	DisallowedTagsMode string   `env:"BOOKMETA_HTML_DISALLOWED_MODE" envDefault:"escape"`
}

// LoadConfig reads Config from the environment and the optional ./.env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Policy returns the HTML policy described by c.
func (c Config) Policy() (sanitizer.Policy, error) {
	mode, err := sanitizer.ParseMode(c.DisallowedTagsMode)
	if err != nil {
		return sanitizer.Policy{}, errors.Join(ErrInvalidConfig, err)
	}
	return sanitizer.Policy{AllowedTags: c.AllowedTags, DisallowedTagsMode: mode}, nil
}

// Logger returns a logger for the configured environment. LogLevel and
// LogFormat, when set, override the environment defaults.
func (c Config) Logger() (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, "bookmeta"),
		logger.WithAttr(logger.Component("catalog")),
	}
	if c.LogLevel != "" {
		l, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithLevel(l))
	}
	if c.LogFormat != "" {
		f, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

// Package config loads runtime settings from .env, an optional config file,
// BANK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BANK"

	DefaultBankName       = "AwesomeGIC Bank"
	DefaultCurrencySymbol = "$"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "console"
)

type Config struct {
	Bank    BankConfig    `mapstructure:"bank"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type BankConfig struct {
	Name           string `mapstructure:"name" validate:"required"`
	CurrencySymbol string `mapstructure:"currency_symbol" validate:"required,max=3"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Load resolves configuration into v. cfgFile, when set, must exist; otherwise
// bank.yaml is looked up in the working directory and ~/.config/simple-bank.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// A missing .env is fine; variables may come from the real environment.
	_ = godotenv.Load()

	v.SetDefault("bank.name", DefaultBankName)
	v.SetDefault("bank.currency_symbol", DefaultCurrencySymbol)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bank")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "simple-bank"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %q)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewLogger builds the slog logger described by the logging section.
func (c LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", c.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch c.Format {
	case "console":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format: %s", c.Format)
}

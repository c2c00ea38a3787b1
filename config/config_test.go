package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-bank/config"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBankName, cfg.Bank.Name)
	assert.Equal(t, "$", cfg.Bank.CurrencySymbol)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
bank:
  name: Test Bank
  currency_symbol: "£"
logging:
  level: DEBUG
  format: json
`)

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "Test Bank", cfg.Bank.Name)
	assert.Equal(t, "£", cfg.Bank.CurrencySymbol)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "bank:\n  name: File Bank\n")
	t.Setenv("BANK_BANK_NAME", "Env Bank")
	t.Setenv("BANK_LOGGING_LEVEL", "error")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "Env Bank", cfg.Bank.Name)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("MissingExplicitFile", func(t *testing.T) {
		_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: chatty\n")
		_, err := config.Load(viper.New(), path)
		assert.ErrorContains(t, err, "invalid config")
		assert.ErrorContains(t, err, "Level")
	})

	t.Run("EmptyBankName", func(t *testing.T) {
		path := writeConfig(t, "bank:\n  name: \"\"\n")
		_, err := config.Load(viper.New(), path)
		assert.ErrorContains(t, err, "Name")
	})
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := config.LoggingConfig{Level: "info", Format: "json"}.NewLogger(&buf)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("shown", "k", "v")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"k":"v"`)
	})

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := config.LoggingConfig{Level: "warn", Format: "console"}.NewLogger(&buf)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := config.LoggingConfig{Level: "loud", Format: "console"}.NewLogger(&bytes.Buffer{})
		assert.Error(t, err)
		_, err = config.LoggingConfig{Level: "info", Format: "xml"}.NewLogger(&bytes.Buffer{})
		assert.Error(t, err)
	})
}

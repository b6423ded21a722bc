package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/anonymize/lib/config"
)

func TestNewTintHandler(t *testing.T) {
	{
		// Info by default
		var buf bytes.Buffer
		logger := slog.New(newTintHandler(&buf, nil))
		logger.Debug("hidden")
		logger.Info("Anonymized dataset", slog.Int("rows", 5))
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "Anonymized dataset")
		assert.Contains(t, buf.String(), "rows=5")
		// Not a terminal, so there should be no escape codes.
		assert.NotContains(t, buf.String(), "\x1b[")
	}
	{
		// Verbose
		var buf bytes.Buffer
		logger := slog.New(newTintHandler(&buf, &config.Settings{VerboseLogging: true}))
		logger.Debug("shown")
		assert.Contains(t, buf.String(), "shown")
	}
}

func TestNewLogger(t *testing.T) {
	{
		_, loggingToSentry := NewLogger(nil)
		assert.False(t, loggingToSentry)
	}
	{
		_, loggingToSentry := NewLogger(&config.Settings{Config: config.Config{Reporting: config.Reporting{Sentry: &config.Sentry{}}}})
		assert.False(t, loggingToSentry)
	}
	{
		_, loggingToSentry := NewLogger(&config.Settings{Config: config.Config{Reporting: config.Reporting{Sentry: &config.Sentry{DSN: "not a dsn"}}}})
		assert.False(t, loggingToSentry)
	}
}

package cmd

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "courier")
	t.Setenv("DB_NAME", "courierhub")
	t.Setenv("JWT_SECRET", "secret")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_HOST", "")
	t.Setenv("PLACEHOLDER_TTL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_SSLMODE", "")

	config, err := LoadConfig(discardLogger())

	require.NoError(t, err)
	assert.Equal(t, defaultHTTPPort, config.HTTPPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, defaultPlaceholderTTL, config.PlaceholderTTL)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.Empty(t, config.KafkaBrokers())
	assert.Equal(t, "host=localhost port=5432 user=courier password= dbname=courierhub sslmode=disable", config.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_HOST", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("PLACEHOLDER_TTL", "90m")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig(discardLogger())

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.KafkaBrokers())
	assert.Equal(t, 90*time.Minute, config.PlaceholderTTL)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestLoadConfig_InvalidOptionalValuesFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("PLACEHOLDER_TTL", "soon")
	t.Setenv("LOG_LEVEL", "chatty")

	config, err := LoadConfig(discardLogger())

	require.NoError(t, err)
	assert.Equal(t, defaultPlaceholderTTL, config.PlaceholderTTL)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST, JWT_SECRET")
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort                  = "8080"
	defaultDeliveryEventsTopic       = "delivery.events"
	defaultPresenceTopic             = "presence.events"
	defaultPlaceholderTTL            = 24 * time.Hour
	defaultPlaceholderPurgeSchedule  = "0 */10 * * * *"
	defaultPresenceBroadcastSchedule = "*/30 * * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is a comma separated broker list. Events are only logged
	// when it is empty.
	KafkaHost                string
	KafkaDeliveryEventsTopic string
	KafkaPresenceTopic       string

	// RedisAddr selects the shared presence store. Presence is kept in
	// process memory when it is empty.
	RedisAddr string

	JWTSecret string
	LogLevel  slog.Level

	PlaceholderTTL            time.Duration
	PlaceholderPurgeSchedule  string
	PresenceBroadcastSchedule string
}

// DSN builds the postgres connection string used by gorm and the migrations.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// LoadConfig reads .env when present and then the process environment.
// Malformed optional values fall back to their defaults with a warning.
func LoadConfig(logger *slog.Logger) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := Config{
		HTTPPort:                  envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:                    os.Getenv("DB_HOST"),
		DBPort:                    envOr("DB_PORT", "5432"),
		DBUser:                    os.Getenv("DB_USER"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    os.Getenv("DB_NAME"),
		DBSslMode:                 envOr("DB_SSLMODE", "disable"),
		KafkaHost:                 os.Getenv("KAFKA_HOST"),
		KafkaDeliveryEventsTopic:  envOr("KAFKA_DELIVERY_EVENTS_TOPIC", defaultDeliveryEventsTopic),
		KafkaPresenceTopic:        envOr("KAFKA_PRESENCE_TOPIC", defaultPresenceTopic),
		RedisAddr:                 os.Getenv("REDIS_ADDR"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		LogLevel:                  parseLevel(logger, os.Getenv("LOG_LEVEL")),
		PlaceholderTTL:            parseDuration(logger, "PLACEHOLDER_TTL", defaultPlaceholderTTL),
		PlaceholderPurgeSchedule:  envOr("PLACEHOLDER_PURGE_SCHEDULE", defaultPlaceholderPurgeSchedule),
		PresenceBroadcastSchedule: envOr("PRESENCE_BROADCAST_SCHEDULE", defaultPresenceBroadcastSchedule),
	}

	var missing []string
	for key, value := range map[string]string{
		"DB_HOST":    config.DBHost,
		"DB_USER":    config.DBUser,
		"DB_NAME":    config.DBName,
		"JWT_SECRET": config.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return config, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(logger *slog.Logger, key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Warn("invalid duration, using default",
			"key", key,
			"value", raw,
			"default", fallback.String(),
		)
		return fallback
	}
	return d
}

func parseLevel(logger *slog.Logger, raw string) slog.Level {
	if raw == "" {
		return slog.LevelInfo
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		logger.Warn("invalid log level, using info", "value", raw)
		return slog.LevelInfo
	}
	return level
}

// Package config loads the application configuration from a yaml file and
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the Telegram connection, the
// database, background workers and the operational HTTP endpoint.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Telegram contains all Telegram Bot API related configurations
	Telegram struct {
		// Token is the bot token obtained from BotFather
		Token string `env:"TELEGRAM_TOKEN" yaml:"token"`
		// PollTimeout is the long-polling timeout for fetching updates
		PollTimeout time.Duration `env:"TELEGRAM_POLL_TIMEOUT" env-default:"10s" yaml:"pollTimeout"`
	} `yaml:"telegram"`

	// Bot contains behavioral knobs for the bot itself
	Bot struct {
		// MaxQuestions limits how many questionnaire questions an event can carry
		MaxQuestions int `env:"BOT_MAX_QUESTIONS" env-default:"5" yaml:"maxQuestions"`
		// SendConcurrency bounds how many Telegram messages are sent in parallel
		// during broadcasts and reminder fan-out
		SendConcurrency int `env:"BOT_SEND_CONCURRENCY" env-default:"20" yaml:"sendConcurrency"`
		// ReminderSweepInterval is how often the reminder sweep job runs
		ReminderSweepInterval time.Duration `env:"BOT_REMINDER_SWEEP_INTERVAL" env-default:"20m" yaml:"reminderSweepInterval"` //nolint: lll
		// EventCacheTTL is how long active event lists are served from cache
		EventCacheTTL time.Duration `env:"BOT_EVENT_CACHE_TTL" env-default:"10m" yaml:"eventCacheTTL"`
		// SettingCacheTTL is how long settings are served from cache
		SettingCacheTTL time.Duration `env:"BOT_SETTING_CACHE_TTL" env-default:"3m" yaml:"settingCacheTTL"`
	} `yaml:"bot"`

	// Ops contains the operational HTTP endpoint configurations
	Ops struct {
		// Addr is the address and port the operational HTTP server will listen on
		Addr string `env:"OPS_ADDR" env-default:":8080" yaml:"addr"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"OPS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"OPS_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"ops"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"eventbot" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for in-flight work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

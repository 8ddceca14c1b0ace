package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the binaries need. Values come from the
// environment, with an optional config file for local runs.
type Config struct {
	HTTPAddr        string
	SpannerDatabase string

	KafkaBrokers []string
	KafkaTopic   string

	OutboxPollInterval time.Duration

	LogLevel string
}

// Load reads configuration from the environment (CATALOG_ prefix) and,
// when path is non-empty, from a config file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("spanner_database", "projects/test-project/instances/emulator-instance/databases/catalog-db")
	v.SetDefault("kafka_brokers", []string{})
	v.SetDefault("kafka_topic", "catalog-events")
	v.SetDefault("outbox_poll_interval", 2*time.Second)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("CATALOG")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		HTTPAddr:           v.GetString("http_addr"),
		SpannerDatabase:    v.GetString("spanner_database"),
		KafkaBrokers:       v.GetStringSlice("kafka_brokers"),
		KafkaTopic:         v.GetString("kafka_topic"),
		OutboxPollInterval: v.GetDuration("outbox_poll_interval"),
		LogLevel:           v.GetString("log_level"),
	}, nil
}

// RelayEnabled reports whether the outbox relay should run.
func (c *Config) RelayEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

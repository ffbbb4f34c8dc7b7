// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress    string
	MetricsAddress string
	StaticDir      string
	CORSOrigin     string
	KafkaBrokers   []string // empty disables roster event publishing
	RosterTopic    string
	ConsumerGroup  string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:    getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress: getEnv("METRICS_ADDRESS", ":9090"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
		RosterTopic:    getEnv("ROSTER_TOPIC", "roster_events"),
		ConsumerGroup:  getEnv("CONSUMER_GROUP", "roster-auditor"),
	}
	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// KafkaConfig holds event-bus connection parameters.
type KafkaConfig struct {
	Topic   string
	Brokers []string
}

// CacheConfig holds assessment-cache parameters. An empty RedisAddr selects
// the in-process cache.
type CacheConfig struct {
	RedisAddr  string
	TTLSeconds int
}

// PolicyConfig carries the lending-policy overrides exposed through the
// environment. Zero values fall back to the compiled defaults.
type PolicyConfig struct {
	BaseRatePercent            float64
	PenaltyRatePercentPerMonth float64
}

// Config is the full service configuration, loaded from the environment.
type Config struct {
	ServiceName string
	LogLevel    string
	LogFormat   string
	Kafka       KafkaConfig
	Cache       CacheConfig
	Policy      PolicyConfig
	GRPCPort    int
	HTTPPort    int
}

// Load reads configuration from the environment with development defaults.
func Load() Config {
	return Config{
		GRPCPort:  getEnvInt("GRPC_PORT", 9095),
		HTTPPort:  getEnvInt("HTTP_PORT", 8095),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "underwriting-events"),
		},
		Cache: CacheConfig{
			RedisAddr:  getEnv("REDIS_ADDR", ""),
			TTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 3600),
		},
		Policy: PolicyConfig{
			BaseRatePercent:            getEnvFloat("BASE_RATE_PERCENT", 0),
			PenaltyRatePercentPerMonth: getEnvFloat("PENALTY_RATE_PERCENT", 0),
		},
		ServiceName: "underwriting-service",
	}
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

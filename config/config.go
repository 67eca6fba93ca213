// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Store backend identifiers.
const (
	StoreBackendSQLite = "sqlite"
	StoreBackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Reminder ReminderConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StoreConfig holds slot store configuration.
// The SQLite backend is the default; Redis is available as an alternative
// key-value medium for the same slots.
type StoreConfig struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// ReminderConfig holds habitual-expense reminder email configuration.
// The worker stays disabled unless both an API key and a recipient are set.
type ReminderConfig struct {
	Enabled       bool
	ResendAPIKey  string
	FromName      string
	FromEmail     string
	ToEmail       string
	CheckInterval time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			Backend:       getEnv("STORE_BACKEND", StoreBackendSQLite),
			SQLitePath:    getEnv("STORE_SQLITE_PATH", "finanzas.db"),
			RedisAddr:     getEnv("STORE_REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("STORE_REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("STORE_REDIS_DB", 0),
		},
		Reminder: ReminderConfig{
			Enabled:       getEnvAsBool("REMINDER_ENABLED", false),
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "Finanzas"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			ToEmail:       getEnv("REMINDER_TO_EMAIL", ""),
			CheckInterval: getEnvAsDuration("REMINDER_CHECK_INTERVAL", 6*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

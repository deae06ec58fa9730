package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Snapshot SnapshotConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SnapshotConfig selects where leave snapshots come from: the reporting
// database ("postgres") or the upstream leave service's REST API ("api").
type SnapshotConfig struct {
	Source  string
	BaseURL string
	APIKey  string
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; real env vars win.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "leave_calendar"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION", "1h"),
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Snapshot source configuration
	config.Snapshot = SnapshotConfig{
		Source:  getEnv("SNAPSHOT_SOURCE", "postgres"),
		BaseURL: getEnv("LEAVE_API_BASE_URL", ""),
		APIKey:  getEnv("LEAVE_API_KEY", ""),
	}
	if config.Snapshot.Source == "api" && config.Snapshot.BaseURL == "" {
		return nil, fmt.Errorf("LEAVE_API_BASE_URL is required when SNAPSHOT_SOURCE=api")
	}

	return config, nil
}

// DatabaseURL builds the pgx connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

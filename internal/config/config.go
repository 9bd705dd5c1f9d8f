package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Auth configuration
	Auth AuthConfig

	// Generation configuration
	Generation GenerationConfig

	// Provider API keys
	Providers ProviderConfig

	// Rate limiting configuration
	RateLimit RateLimitConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// AuthConfig holds token signing settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// GenerationConfig holds generative text provider settings
type GenerationConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ProviderConfig holds topic and image source API keys.
// An empty key removes that source from the aggregation fan-out.
type ProviderConfig struct {
	NewsAPIKey       string
	TwitterBearer    string
	UnsplashKey      string
	PexelsKey        string
	ProviderTimeout  time.Duration
	WordPressTimeout time.Duration
}

// RateLimitConfig holds fixed-window rate limit settings
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
	RedisAddr   string // optional shared store, in-memory when empty
	RedisPass   string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 180*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "article_writer"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDurationEnv("TOKEN_TTL", 24*time.Hour),
		},
		Generation: GenerationConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout: getDurationEnv("GENERATION_TIMEOUT", 120*time.Second),
		},
		Providers: ProviderConfig{
			NewsAPIKey:       getEnv("NEWS_API_KEY", ""),
			TwitterBearer:    getEnv("TWITTER_BEARER_TOKEN", ""),
			UnsplashKey:      getEnv("UNSPLASH_ACCESS_KEY", ""),
			PexelsKey:        getEnv("PEXELS_API_KEY", ""),
			ProviderTimeout:  getDurationEnv("PROVIDER_TIMEOUT", 10*time.Second),
			WordPressTimeout: getDurationEnv("WORDPRESS_TIMEOUT", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			Window:      getDurationEnv("RATE_LIMIT_WINDOW", 15*time.Minute),
			MaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
			RedisAddr:   getEnv("REDIS_ADDR", ""),
			RedisPass:   getEnv("REDIS_PASSWORD", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Generation.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

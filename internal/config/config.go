package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `toml:"server"`
	CORS    CORSConfig    `toml:"cors"`
	MFAPI   MFAPIConfig   `toml:"mfapi"`
	Cache   CacheConfig   `toml:"cache"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `toml:"port"`
	Host string `toml:"host"`
	Addr string `toml:"-"` // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// MFAPIConfig configures the NAV data provider client.
type MFAPIConfig struct {
	BaseURL   string `toml:"base_url"`
	Timeout   string `toml:"timeout"`
	RateLimit int    `toml:"rate_limit"` // requests per second, 0 disables limiting
}

// GetTimeout parses the timeout, falling back to 30s.
func (c *MFAPIConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 30*time.Second)
}

// CacheConfig configures the in-memory provider caches.
type CacheConfig struct {
	TTL           string `toml:"ttl"`
	SweepSchedule string `toml:"sweep_schedule"` // cron spec, e.g. "@every 10m"
}

// GetTTL parses the cache TTL, falling back to one hour.
func (c *CacheConfig) GetTTL() time.Duration {
	return parseDuration(c.TTL, time.Hour)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns the configuration used when nothing is overridden.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "5001",
			Host: "localhost",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		MFAPI: MFAPIConfig{
			BaseURL:   "https://api.mfapi.in",
			Timeout:   "30s",
			RateLimit: 5,
		},
		Cache: CacheConfig{
			TTL:           "1h",
			SweepSchedule: "@every 10m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from defaults, an optional TOML file, a .env file
// and environment variables, in increasing order of precedence.
// The TOML path comes from CONFIG_FILE (default ./config.toml); a missing file is skipped.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := NewDefaultConfig()

	path := getEnv("CONFIG_FILE", "./config.toml")
	if err := loadFile(config, path); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	config.Server.Host = getEnv("SERVER_HOST", config.Server.Host)
	config.Server.Port = getEnv("SERVER_PORT", config.Server.Port)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.CORS.AllowedOrigins = splitList(origins)
	}

	config.MFAPI.BaseURL = getEnv("MFAPI_BASE_URL", config.MFAPI.BaseURL)
	config.MFAPI.Timeout = getEnv("MFAPI_TIMEOUT", config.MFAPI.Timeout)
	if v := os.Getenv("MFAPI_RATE_LIMIT"); v != "" {
		if rl, err := strconv.Atoi(v); err == nil {
			config.MFAPI.RateLimit = rl
		}
	}

	config.Cache.TTL = getEnv("CACHE_TTL", config.Cache.TTL)
	config.Cache.SweepSchedule = getEnv("CACHE_SWEEP_SCHEDULE", config.Cache.SweepSchedule)

	config.Logging.Level = getEnv("LOG_LEVEL", config.Logging.Level)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

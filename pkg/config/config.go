package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "JAMJOT"

var (
	once    sync.Once
	initErr error
)

// placeholders are secret values that must never reach production
var placeholders = []string{
	"YOUR_CLIENT_ID",
	"YOUR_CLIENT_SECRET",
	"YOUR_SECRET_HERE",
	"changeme",
	"CHANGEME",
	"",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load()
	})
	return initErr
}

func load() error {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		return fmt.Errorf("database.path is required")
	}

	if viper.GetFloat64("catalog.rate_limit") <= 0 {
		viper.Set("catalog.rate_limit", 10)
	}

	if size := viper.GetInt("catalog.page_size"); size <= 0 || size > 100 {
		viper.Set("catalog.page_size", 100)
	}

	return validateSecrets()
}

func validateSecrets() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	secrets := map[string]string{
		"catalog.client_id":     viper.GetString("catalog.client_id"),
		"catalog.client_secret": viper.GetString("catalog.client_secret"),
		"auth.jwt_secret":       viper.GetString("auth.jwt_secret"),
	}

	for key, value := range secrets {
		if !isPlaceholder(value) {
			continue
		}
		if isProduction {
			return fmt.Errorf("invalid %s: cannot use placeholder values in production", key)
		}
		log.Warn("config value is using a placeholder", "key", key)
	}

	if isProduction && viper.GetString("auth.dev_token") != "" {
		return fmt.Errorf("auth.dev_token must not be set in production")
	}

	return nil
}

func isPlaceholder(value string) bool {
	for _, placeholder := range placeholders {
		if value == placeholder {
			return true
		}
	}
	return false
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Catalog.RateLimit <= 0 {
		c.Catalog.RateLimit = 10
	}
	if c.Catalog.PageSize <= 0 || c.Catalog.PageSize > 100 {
		c.Catalog.PageSize = 100
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/jamjot.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", time.Hour)
	viper.SetDefault("database.verbose", false)
	viper.SetDefault("database.migrate_on_start", true)

	// Catalog defaults
	viper.SetDefault("catalog.base_url", "https://api.spotify.com/v1")
	viper.SetDefault("catalog.token_url", "https://accounts.spotify.com/api/token")
	viper.SetDefault("catalog.client_id", "")
	viper.SetDefault("catalog.client_secret", "")
	viper.SetDefault("catalog.timeout", 10*time.Second)
	viper.SetDefault("catalog.rate_limit", 10)
	viper.SetDefault("catalog.retry_attempts", 3)
	viper.SetDefault("catalog.page_size", 100)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.dev_token", "")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")
	viper.SetDefault("logging.file_path", "./logs/jamjot.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 10)
	viper.SetDefault("logging.max_age", 30)
	viper.SetDefault("logging.compress", true)
	viper.SetDefault("logging.enable_caller", false)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}

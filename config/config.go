package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Hosted backend specifics
	Backend  BackendConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Realtime RealtimeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the hosted table store (REST endpoint).
type BackendConfig struct {
	URL    string
	APIKey string
	Table  string
}

// AuthConfig points at the anonymous sign-in endpoint.
type AuthConfig struct {
	URL string
}

// StorageConfig points at the S3-compatible attachment bucket.
type StorageConfig struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	URLCacheTTL   time.Duration
}

// RealtimeConfig points at the websocket change feed.
type RealtimeConfig struct {
	URL     string
	Enabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Hosted backend
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.APIKey = viper.GetString("backend.api_key")
	cfg.Backend.Table = viper.GetString("backend.table")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	if apiKey := viper.GetString("backend_api_key"); apiKey != "" {
		cfg.Backend.APIKey = apiKey
	}

	cfg.Auth.URL = viper.GetString("auth.url")
	// Auth endpoint defaults to the backend host.
	if cfg.Auth.URL == "" {
		cfg.Auth.URL = cfg.Backend.URL
	}

	cfg.Storage.Endpoint = viper.GetString("storage.endpoint")
	cfg.Storage.Region = viper.GetString("storage.region")
	cfg.Storage.AccessKey = viper.GetString("storage.access_key")
	cfg.Storage.SecretKey = viper.GetString("storage.secret_key")
	cfg.Storage.Bucket = viper.GetString("storage.bucket")
	cfg.Storage.PublicBaseURL = viper.GetString("storage.public_base_url")
	cfg.Storage.URLCacheTTL = viper.GetDuration("storage.url_cache_ttl")

	cfg.Realtime.URL = viper.GetString("realtime.url")
	cfg.Realtime.Enabled = viper.GetBool("realtime.enabled")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.table", "tasks")
	viper.SetDefault("storage.region", "us-east-1")
	viper.SetDefault("storage.bucket", "attachments")
	viper.SetDefault("storage.url_cache_ttl", 10*time.Minute)
	viper.SetDefault("realtime.enabled", true)
}

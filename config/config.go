package config

import (
	"fmt"
	"net/url"
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

	// Lost & found specifics
	Backend  BackendConfig
	Claim    ClaimConfig
	Recency  RecencyConfig
	Snapshot SnapshotConfig
	Image    ImageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the lost & found REST backend.
type BackendConfig struct {
	URL           string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	Breaker       BreakerConfig
}

type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type ClaimConfig struct {
	RateLimitPerMin int
	RegistrySize    int
	RegistryTTL     time.Duration
}

type RecencyConfig struct {
	Timezone       string
	ThresholdHours int
}

type SnapshotConfig struct {
	Driver        string // memory | redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Key           string
	TTL           time.Duration
}

type ImageConfig struct {
	Placeholder  string
	MaxDimension int
}

// Load loads configuration using Viper.
// A .env file, if present, is loaded into the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/lostfound/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/lostfound/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Backend. API_URL mirrors the variable the web frontend reads.
	cfg.Backend.URL = v.GetString("backend.url")
	if apiURL := v.GetString("api_url"); apiURL != "" {
		cfg.Backend.URL = apiURL
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.RetryAttempts = v.GetInt("backend.retry_attempts")
	cfg.Backend.RetryDelay = v.GetDuration("backend.retry_delay")
	cfg.Backend.Breaker.MaxRequests = v.GetUint32("backend.breaker.max_requests")
	cfg.Backend.Breaker.Interval = v.GetDuration("backend.breaker.interval")
	cfg.Backend.Breaker.Timeout = v.GetDuration("backend.breaker.timeout")
	cfg.Backend.Breaker.FailureThreshold = v.GetUint32("backend.breaker.failure_threshold")

	cfg.Claim.RateLimitPerMin = v.GetInt("claim.rate_limit_per_min")
	cfg.Claim.RegistrySize = v.GetInt("claim.registry_size")
	cfg.Claim.RegistryTTL = v.GetDuration("claim.registry_ttl")

	cfg.Recency.Timezone = v.GetString("recency.timezone")
	cfg.Recency.ThresholdHours = v.GetInt("recency.threshold_hours")

	cfg.Snapshot.Driver = strings.ToLower(v.GetString("snapshot.driver"))
	cfg.Snapshot.RedisAddr = v.GetString("snapshot.redis_addr")
	cfg.Snapshot.RedisPassword = v.GetString("snapshot.redis_password")
	cfg.Snapshot.RedisDB = v.GetInt("snapshot.redis_db")
	cfg.Snapshot.Key = v.GetString("snapshot.key")
	cfg.Snapshot.TTL = v.GetDuration("snapshot.ttl")

	cfg.Image.Placeholder = v.GetString("image.placeholder")
	cfg.Image.MaxDimension = v.GetInt("image.max_dimension")

	return cfg
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend.url %q is not an absolute http(s) URL", c.Backend.URL)
	}
	if c.Backend.RetryAttempts < 1 {
		return fmt.Errorf("backend.retry_attempts must be at least 1")
	}

	switch c.Snapshot.Driver {
	case "memory":
	case "redis":
		if c.Snapshot.RedisAddr == "" {
			return fmt.Errorf("snapshot.redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("snapshot.driver %q must be memory or redis", c.Snapshot.Driver)
	}

	if c.Recency.ThresholdHours <= 0 {
		return fmt.Errorf("recency.threshold_hours must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Backend defaults
	v.SetDefault("backend.url", "http://localhost:4000")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.retry_attempts", 3)
	v.SetDefault("backend.retry_delay", "300ms")
	v.SetDefault("backend.breaker.max_requests", 1)
	v.SetDefault("backend.breaker.interval", "60s")
	v.SetDefault("backend.breaker.timeout", "30s")
	v.SetDefault("backend.breaker.failure_threshold", 5)

	v.SetDefault("claim.rate_limit_per_min", 30)
	v.SetDefault("claim.registry_size", 1000)
	v.SetDefault("claim.registry_ttl", "30m")

	v.SetDefault("recency.timezone", "America/Sao_Paulo")
	v.SetDefault("recency.threshold_hours", 24)

	v.SetDefault("snapshot.driver", "memory")
	v.SetDefault("snapshot.redis_addr", "localhost:6379")
	v.SetDefault("snapshot.redis_db", 0)
	v.SetDefault("snapshot.key", "lostfound:items:snapshot")
	v.SetDefault("snapshot.ttl", "10m")

	v.SetDefault("image.placeholder", "/placeholder.svg")
	v.SetDefault("image.max_dimension", 1280)
}

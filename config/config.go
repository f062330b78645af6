package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Remote listings API
	API APIConfig

	// Views
	Detail DetailConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig describes how to reach the listings service.
type APIConfig struct {
	BaseURL         string // e.g. http://localhost:5002/api
	Timeout         time.Duration
	RateLimitPerSec float64 // 0 disables client-side throttling
	RateBurst       int
}

type DetailConfig struct {
	RedirectDelay time.Duration // delay before leaving a listing that no longer exists
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/listings/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/listings/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	if apiURL := v.GetString("listings_api_url"); apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(apiURL, "/")
	}
	cfg.API.Timeout = v.GetDuration("api.timeout")
	cfg.API.RateLimitPerSec = v.GetFloat64("api.rate_limit_per_sec")
	cfg.API.RateBurst = v.GetInt("api.rate_burst")

	cfg.Detail.RedirectDelay = v.GetDuration("detail.redirect_delay")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api.base_url %q: %w", cfg.API.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: scheme and host are required", cfg.API.BaseURL)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if cfg.API.RateLimitPerSec < 0 {
		return fmt.Errorf("api.rate_limit_per_sec must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("api.base_url", "http://localhost:5002/api")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.rate_limit_per_sec", 0)
	v.SetDefault("api.rate_burst", 5)

	v.SetDefault("detail.redirect_delay", "3s")
}

package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration values.
type Config struct {
	APIBaseURL  string        `mapstructure:"API_BASE_URL"`
	APITimeout  time.Duration `mapstructure:"API_TIMEOUT"`
	StoragePath string        `mapstructure:"STORAGE_PATH"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from config.yaml (current dir or ./config) and the
// environment, with sane defaults for local use. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("API_BASE_URL", "http://localhost:8000/api/")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("STORAGE_PATH", "gymapp.db")
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine; environment variables and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if !strings.HasSuffix(cfg.APIBaseURL, "/") {
		cfg.APIBaseURL += "/"
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = 10 * time.Second
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName            string `mapstructure:"app_name"`
	Env                string `mapstructure:"app_env"`
	LogLevel           string `mapstructure:"log_level"`
	Charset            string `mapstructure:"charset"`
	DefaultHeadersFile string `mapstructure:"default_headers_file"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "samvad-http-builder")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("charset", "UTF-8")
	v.SetDefault("default_headers_file", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Charset = strings.TrimSpace(cfg.Charset)
	if cfg.Charset == "" {
		return nil, fmt.Errorf("invalid charset (must not be empty)")
	}
	cfg.DefaultHeadersFile = strings.TrimSpace(cfg.DefaultHeadersFile)

	return &cfg, nil
}

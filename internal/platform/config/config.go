// Package config loads application configuration from yaml files with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/gookit/config/v2"
	"github.com/gookit/config/v2/yaml"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `config:"port"`
}

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string `config:"user"`
	Password string `config:"password"`
	Host     string `config:"host"`
	Port     string `config:"port"`
	Name     string `config:"name"`
	Migrate  bool   `config:"migrate"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `config:"host"`
	Port     string `config:"port"`
	Password string `config:"password"`
}

// AuthConfig holds the secrets for session and bearer-token auth.
type AuthConfig struct {
	JWTSecret string `config:"jwt_secret"`
}

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `config:"server"`
	DB     DBConfig     `config:"db"`
	Redis  RedisConfig  `config:"redis"`
	Auth   AuthConfig   `config:"auth"`
}

// Load reads config.yml (and config.local.yml when present) from the
// directory named by TODO_CONFIG_DIR, with ${ENV_VAR} references in the
// files resolved from the environment.
func Load() (*Config, error) {
	config.WithOptions(func(opt *config.Options) {
		opt.ParseEnv = true
		opt.DecoderConfig.TagName = "config"
	})
	config.AddDriver(yaml.Driver)

	baseDir := os.Getenv("TODO_CONFIG_DIR")

	if err := config.LoadFiles(fmt.Sprintf("%sconfig.yml", baseDir)); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.LoadExists(fmt.Sprintf("%sconfig.local.yml", baseDir)); err != nil {
		return nil, fmt.Errorf("failed to load local config: %w", err)
	}

	var cfg Config
	if err := config.BindStruct("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	return &cfg, nil
}

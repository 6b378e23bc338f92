package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// TokenEnv overrides api_token from the file when set.
const TokenEnv = "CHATEASE_API_TOKEN"

type Config struct {
	APIToken      string        `yaml:"api_token" validate:"required"`
	WorkspaceSlug string        `yaml:"workspace_slug" validate:"required"`
	BaseURL       string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout       time.Duration `yaml:"timeout" validate:"gte=0"`
	LogLevel      string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON       bool          `yaml:"log_json"`
}

// Load reads a YAML config file, applies the token env override and validates the result.
func Load(configPath string) (*Config, error) {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("can't read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}

	if token := os.Getenv(TokenEnv); token != "" {
		cfg.APIToken = token
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

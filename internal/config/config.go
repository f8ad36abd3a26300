package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New()

type Config struct {
	APIKey    string   `yaml:"api_key" validate:"required"`
	BaseURL   string   `yaml:"base_url" validate:"omitempty,url"`
	Addresses []string `yaml:"addresses" validate:"min=1,dive,required"`
	OutputDir string   `yaml:"output_dir"`
	CachePath string   `yaml:"cache_path"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Client    ClientConfig    `yaml:"client"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	BurstSize         int `yaml:"burst_size"`
}

type ClientConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Load reads and validates a YAML config. The OCTAV_API_KEY environment
// variable overrides the file so keys can stay out of checked-in configs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if key := os.Getenv("OCTAV_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	cfg.applyDefaults()

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.CachePath == "" {
		c.CachePath = ".taxport-cache"
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 4
	}
	if c.RateLimit.BurstSize == 0 {
		c.RateLimit.BurstSize = 2
	}
	if c.Client.RequestTimeout == 0 {
		c.Client.RequestTimeout = 30 * time.Second
	}
}

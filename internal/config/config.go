// Package config loads the tracker's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RedisConfig locates the Redis server holding the friend list.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// Config is the top-level .lcfriends.yml configuration.
type Config struct {
	Redis RedisConfig `yaml:"redis"`

	// Endpoint is the GraphQL endpoint queried for friend data.
	Endpoint string `yaml:"endpoint"`

	// Namespace isolates this profile's keys on a shared Redis server.
	Namespace string `yaml:"namespace"`

	// SubmissionLimit is how many recent submissions to fetch per friend.
	SubmissionLimit int `yaml:"submission_limit"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Redis:           RedisConfig{Addr: "localhost:6379"},
		Endpoint:        "https://leetcode.com/graphql/",
		Namespace:       "default",
		SubmissionLimit: 5,
	}
}

// DefaultPath returns ~/.lcfriends.yml, or just the bare filename when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lcfriends.yml"
	}
	return filepath.Join(home, ".lcfriends.yml")
}

// Validate checks the configuration for values that would break at runtime.
func (c *Config) Validate() error {
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr must not be empty")
	}
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if c.SubmissionLimit < 0 {
		return fmt.Errorf("submission_limit must not be negative (got %d)", c.SubmissionLimit)
	}
	return nil
}

// Load reads and validates the config at path. A missing file is not an
// error: defaults apply. Fields left empty in the file also fall back to
// their defaults. Environment variables LCFRIENDS_REDIS_ADDR and
// LCFRIENDS_ENDPOINT override both.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		applyDefaults(config)
	}

	if addr := os.Getenv("LCFRIENDS_REDIS_ADDR"); addr != "" {
		config.Redis.Addr = addr
	}
	if endpoint := os.Getenv("LCFRIENDS_ENDPOINT"); endpoint != "" {
		config.Endpoint = endpoint
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func applyDefaults(config *Config) {
	defaults := Default()
	if config.Redis.Addr == "" {
		config.Redis.Addr = defaults.Redis.Addr
	}
	if config.Endpoint == "" {
		config.Endpoint = defaults.Endpoint
	}
	if config.Namespace == "" {
		config.Namespace = defaults.Namespace
	}
	if config.SubmissionLimit == 0 {
		config.SubmissionLimit = defaults.SubmissionLimit
	}
}

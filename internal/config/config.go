// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Every value read from the YAML file can be overridden by the environment
// variable named in its env:"..." tag.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Id generation strategies understood by the storage layer.
const (
	IDStrategyRandom     = "random"
	IDStrategySequential = "sequential"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// IDStrategy selects how new student and classroom ids are drawn:
	// "random" (uniform over positive int32, retried until unused) or
	// "sequential" (per-school counter).
	IDStrategy string `yaml:"id_strategy" env:"ID_STRATEGY" env-default:"random"`

	HTTPServer `yaml:"http_server"`
	School     `yaml:"school"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// School describes the single school instance served by the process.
type School struct {
	ID   int    `yaml:"id" env:"SCHOOL_ID" env-default:"1"`
	Name string `yaml:"name" env:"SCHOOL_NAME" env-default:"MySchool"`
}

// Validate rejects values cleanenv accepts syntactically but the
// application cannot run with.
func (c *Config) Validate() error {
	switch c.IDStrategy {
	case IDStrategyRandom, IDStrategySequential:
	default:
		return fmt.Errorf("config: unknown id_strategy %q", c.IDStrategy)
	}
	if c.School.ID <= 0 {
		return fmt.Errorf("config: school.id must be positive, got %d", c.School.ID)
	}
	return nil
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
// Functions prefixed with "Must" are allowed to exit the process on failure;
// if this returns, the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}

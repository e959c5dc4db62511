package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// fileConfig mirrors the keys accepted in .fixturelint.yml
type fileConfig struct {
	InputDir    string   `yaml:"input_dir"`
	ExpectedDir string   `yaml:"expected_dir"`
	FailSuffix  string   `yaml:"fail_suffix"`
	Exclude     []string `yaml:"exclude"`
	LogLevel    string   `yaml:"log_level"`
}

// Load builds the configuration for projectPath from defaults, the optional
// YAML file, the optional .env file plus process environment, and flags, in
// that order of precedence.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	if err := cfg.loadFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile)); err != nil {
		return nil, err
	}
	cfg.loadEnv(filepath.Join(cfg.ProjectPath, ".env"))
	cfg.ApplyFlags(flags)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.InputDir != "" {
		c.InputDir = fc.InputDir
	}
	if fc.ExpectedDir != "" {
		c.ExpectedDir = fc.ExpectedDir
	}
	if fc.FailSuffix != "" {
		c.FailSuffix = fc.FailSuffix
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	c.Exclude = append(c.Exclude, fc.Exclude...)
	return nil
}

func (c *Config) loadEnv(envPath string) {
	// .env is optional; variables already set in the environment win
	_ = godotenv.Load(envPath)

	if v := os.Getenv(EnvInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(EnvExpectedDir); v != "" {
		c.ExpectedDir = v
	}
	if v := os.Getenv(EnvFailSuffix); v != "" {
		c.FailSuffix = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

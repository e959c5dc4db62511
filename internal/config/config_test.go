package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetInputPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   New(),
			expected: "input",
		},
		{
			name: "with project path",
			config: &Config{
				ProjectPath: "/project",
				InputDir:    "input",
			},
			expected: "/project/input",
		},
		{
			name: "absolute input dir",
			config: &Config{
				ProjectPath: "/project",
				InputDir:    "/absolute/path",
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetInputPath()
			if result != filepath.FromSlash(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetExpectedPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/project"

	if got := cfg.GetExpectedPath(); got != filepath.FromSlash("/project/expected_kdl") {
		t.Errorf("expected /project/expected_kdl, got %s", got)
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = t.TempDir()

	path := cfg.GetOutputPath()
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
	if filepath.Base(path) != DefaultOutputJSONFile {
		t.Errorf("expected file name %s, got %s", DefaultOutputJSONFile, filepath.Base(path))
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.InputDir != DefaultInputDir {
		t.Errorf("expected InputDir %s, got %s", DefaultInputDir, cfg.InputDir)
	}
	if cfg.ExpectedDir != DefaultExpectedDir {
		t.Errorf("expected ExpectedDir %s, got %s", DefaultExpectedDir, cfg.ExpectedDir)
	}
	if cfg.FailSuffix != DefaultFailSuffix {
		t.Errorf("expected FailSuffix %s, got %s", DefaultFailSuffix, cfg.FailSuffix)
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("expected no excludes, got %v", cfg.Exclude)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults without files", func(t *testing.T) {
		cfg, err := Load(Flags{ProjectPath: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != DefaultInputDir || cfg.ExpectedDir != DefaultExpectedDir {
			t.Errorf("expected default roots, got %s and %s", cfg.InputDir, cfg.ExpectedDir)
		}
	})

	t.Run("yaml file then flags", func(t *testing.T) {
		dir := t.TempDir()
		content := "input_dir: in\nexpected_dir: out\nfail_suffix: _bad\nexclude:\n  - \"**/*.tmp\"\n"
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(Flags{ProjectPath: dir, ExpectedDir: "golden"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != "in" {
			t.Errorf("expected InputDir in, got %s", cfg.InputDir)
		}
		if cfg.ExpectedDir != "golden" {
			t.Errorf("expected flag to win, got %s", cfg.ExpectedDir)
		}
		if cfg.FailSuffix != "_bad" {
			t.Errorf("expected FailSuffix _bad, got %s", cfg.FailSuffix)
		}
		if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "**/*.tmp" {
			t.Errorf("expected one exclude pattern, got %v", cfg.Exclude)
		}
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("inputs: x\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := Load(Flags{ProjectPath: dir}); err == nil {
			t.Error("expected error for unknown key")
		}
	})

	t.Run("environment overrides yaml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("fail_suffix: _bad\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		t.Setenv(EnvFailSuffix, "_broken")

		cfg, err := Load(Flags{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.FailSuffix != "_broken" {
			t.Errorf("expected FailSuffix _broken, got %s", cfg.FailSuffix)
		}
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvInputDir+"=fixtures_in\n"), 0644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv(EnvInputDir) })

		cfg, err := Load(Flags{ProjectPath: dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputDir != "fixtures_in" {
			t.Errorf("expected InputDir fixtures_in, got %s", cfg.InputDir)
		}
	})
}

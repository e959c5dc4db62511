package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	InputDir    string
	ExpectedDir string

	// Naming convention
	FailSuffix string

	// Relative-path patterns dropped from both roots
	Exclude []string

	// Report settings
	OutputJSONFile string
	OutputJSONDir  string

	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	InputDir    string
	ExpectedDir string
	FailSuffix  string
	Exclude     []string
	NameFilter  string
	Status      string
	LogLevel    string
	Progress    bool
	Save        bool
	NoColor     bool
	Plain       bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		InputDir:       DefaultInputDir,
		ExpectedDir:    DefaultExpectedDir,
		FailSuffix:     DefaultFailSuffix,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		LogLevel:       DefaultLogLevel,
	}
}

// ApplyFlags overrides settings with non-empty flag values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.ExpectedDir != "" {
		c.ExpectedDir = flags.ExpectedDir
	}
	if flags.FailSuffix != "" {
		c.FailSuffix = flags.FailSuffix
	}
	if len(flags.Exclude) > 0 {
		c.Exclude = append(c.Exclude, flags.Exclude...)
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// GetInputPath returns the input root, relative to the project path unless absolute
func (c *Config) GetInputPath() string {
	return c.resolve(c.InputDir)
}

// GetExpectedPath returns the expected-output root, relative to the project path unless absolute
func (c *Config) GetExpectedPath() string {
	return c.resolve(c.ExpectedDir)
}

// GetOutputPath returns the absolute path of the saved report so check and report agree regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectPath, dir)
}

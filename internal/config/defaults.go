package config

const (
	// DefaultProjectPath is the directory holding both fixture roots
	DefaultProjectPath = "."
	// DefaultInputDir is the root holding input fixtures
	DefaultInputDir = "input"
	// DefaultExpectedDir is the root holding expected-output fixtures
	DefaultExpectedDir = "expected_kdl"
	// DefaultFailSuffix marks an input that is expected to fail
	DefaultFailSuffix = "_fail"
	// DefaultOutputJSONFile is the saved report file name
	DefaultOutputJSONFile = "lint-report.json"
	// DefaultOutputJSONDir is the saved report directory
	DefaultOutputJSONDir = ".fixturelint"
	// DefaultConfigFile is the optional YAML config in the project path
	DefaultConfigFile = ".fixturelint.yml"
	// DefaultLogLevel is the slog level name
	DefaultLogLevel = "warn"
)

// Environment variables read after the optional .env file is loaded
const (
	EnvInputDir    = "FIXTURELINT_INPUT_DIR"
	EnvExpectedDir = "FIXTURELINT_EXPECTED_DIR"
	EnvFailSuffix  = "FIXTURELINT_FAIL_SUFFIX"
	EnvLogLevel    = "FIXTURELINT_LOG_LEVEL"
)

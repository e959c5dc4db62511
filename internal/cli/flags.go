package cli

import "fixturelint/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		InputDir:    f.InputDir,
		ExpectedDir: f.ExpectedDir,
		FailSuffix:  f.FailSuffix,
		Exclude:     f.Exclude,
		NameFilter:  f.NameFilter,
		Status:      f.Status,
		LogLevel:    f.LogLevel,
		Progress:    f.Progress,
		Save:        f.Save,
		NoColor:     f.NoColor,
		Plain:       f.Plain,
	}
}

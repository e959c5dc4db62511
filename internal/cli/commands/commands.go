package commands

import (
	"errors"
	"fmt"

	"fixturelint/internal/cli"
	"fixturelint/internal/config"
	"fixturelint/internal/discovery"
	"fixturelint/internal/domain"
	"fixturelint/internal/lint"
	"fixturelint/internal/logger"
	"fixturelint/internal/storage"

	"github.com/spf13/cobra"
)

// ErrViolations is returned when the fixture corpus breaks a convention.
// The violations themselves have already been printed.
var ErrViolations = errors.New("fixture violations found")

// Commands holds all CLI commands
type Commands struct {
	Check  *CheckCommand
	List   *ListCommand
	Report *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Check:  NewCheckCommand(cfg, jsonStorage),
		List:   NewListCommand(cfg, filter),
		Report: NewReportCommand(cfg, jsonStorage),
	}
}

// Register registers all commands with cobra. The root command itself runs the check.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		logger.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Flags.NoColor)
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ProjectPath, "project", "C", "", "Directory holding the fixture roots (default: current directory)")
	pf.StringVar(&flags.InputDir, "input-dir", "", "Input fixture root (default \""+config.DefaultInputDir+"\")")
	pf.StringVar(&flags.ExpectedDir, "expected-dir", "", "Expected-output fixture root (default \""+config.DefaultExpectedDir+"\")")
	pf.StringVar(&flags.FailSuffix, "fail-suffix", "", "Base-name suffix marking inputs expected to fail (default \""+config.DefaultFailSuffix+"\")")
	pf.StringArrayVarP(&flags.Exclude, "exclude", "x", nil, "Exclude fixtures whose relative path matches this glob (repeatable, supports **)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: error, warn, info, debug (default \""+config.DefaultLogLevel+"\")")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.RunE = c.Check.Execute
	addCheckFlags(rootCmd, flags)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check the fixture corpus (default command)",
		Long:  "Verify that every input has an expected output or a fail suffix, that no expected output is orphaned, and that every expected output ends with a newline",
		Args:  cobra.NoArgs,
		RunE:  c.Check.Execute,
	}
	addCheckFlags(checkCmd, flags)
	rootCmd.AddCommand(checkCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fixture pairs",
		Long:  "Scan both fixture roots and list every fixture pair with its status without failing",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by name pattern (supports wildcards, e.g. '*_fail.kdl' or '**/strings/*')")
	listCmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Only list pairs with this status: complete, expected-failure, orphaned, missing-output")
	rootCmd.AddCommand(listCmd)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "View the last saved report",
		Long:  "Display violations saved by 'check --save' in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	reportCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the saved report instead of opening the viewer")
	rootCmd.AddCommand(reportCmd)
}

func addCheckFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr while reading expected outputs")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save the report for 'fixturelint report'")
}

// newLinter builds a Linter over the configured roots
func newLinter(cfg *config.Config) (*lint.Linter, lint.Options, error) {
	scanner, err := discovery.NewScanner(cfg.Exclude)
	if err != nil {
		return nil, lint.Options{}, fmt.Errorf("configure scanner: %w", err)
	}

	opts := lint.Options{
		Input:      domain.Root{Name: cfg.InputDir, Path: cfg.GetInputPath()},
		Expected:   domain.Root{Name: cfg.ExpectedDir, Path: cfg.GetExpectedPath()},
		FailSuffix: cfg.FailSuffix,
	}
	return lint.NewLinter(scanner, opts), opts, nil
}

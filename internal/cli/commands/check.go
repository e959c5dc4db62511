package commands

import (
	"fmt"

	"fixturelint/internal/config"
	"fixturelint/internal/lint"
	"fixturelint/internal/storage"
	"fixturelint/internal/ui"

	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config, st storage.Storage) *CheckCommand {
	return &CheckCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	linter, opts, err := newLinter(cc.config)
	if err != nil {
		return err
	}

	var bar *ui.ProgressBar
	if cc.config.Flags.Progress {
		linter.SetProgress(func(total int) lint.Progress {
			if total == 0 {
				return nil
			}
			bar = ui.NewProgressBar(total, cmd.ErrOrStderr())
			return bar
		})
	}

	result, err := linter.Run(cmd.Context())
	if bar != nil {
		if err != nil {
			bar.Abort()
		} else {
			bar.Finish()
		}
	}
	if err != nil {
		return err
	}

	if cc.config.Flags.Save {
		if err := cc.storage.Save(result, opts); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	ui.NewFormatter(cc.config, cmd.OutOrStdout()).PrintReport(result.Report)

	if result.Report.Failed() {
		return ErrViolations
	}
	return nil
}

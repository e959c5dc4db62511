package commands

import (
	"github.com/spf13/cobra"

	"fixturelint/internal/config"
	"fixturelint/internal/storage"
	"fixturelint/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage) *ReportCommand {
	return &ReportCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := rc.storage.Load()
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(rc.config, cmd.OutOrStdout())
	if rc.config.Flags.Plain || !ui.IsTerminal(cmd.OutOrStdout()) {
		formatter.PrintResolvedReport(output)
		return nil
	}

	return ui.NewReportViewer(rc.config, rc.storage, formatter).View(output)
}

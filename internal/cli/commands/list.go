package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixturelint/internal/config"
	"fixturelint/internal/discovery"
	"fixturelint/internal/domain"
	"fixturelint/internal/lint"
	"fixturelint/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	filter *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config: cfg,
		filter: filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	status, err := parseStatus(lc.config.Flags.Status)
	if err != nil {
		return err
	}

	linter, _, err := newLinter(lc.config)
	if err != nil {
		return err
	}
	inputs, outputs, err := linter.Enumerate()
	if err != nil {
		return err
	}

	pairs := lint.Pairs(inputs, outputs, lc.config.FailSuffix)
	pairs = lc.filter.FilterByName(pairs, lc.config.Flags.NameFilter)
	pairs = lc.filter.FilterByStatus(pairs, status)

	formatter := ui.NewFormatter(lc.config, cmd.OutOrStdout())
	if len(pairs) == 0 {
		formatter.PrintNoFixtures()
		return nil
	}

	formatter.PrintPairList(pairs)
	return nil
}

func parseStatus(s string) (domain.PairStatus, error) {
	switch status := domain.PairStatus(s); status {
	case "", domain.StatusComplete, domain.StatusExpectedFailure, domain.StatusOrphaned, domain.StatusMissingOutput:
		return status, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"fixturelint/internal/cli"
	"fixturelint/internal/cli/commands"
	"fixturelint/internal/config"

	"github.com/spf13/cobra"
)

const (
	exitOK         = 0
	exitViolations = 1
	exitFatal      = 2
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]))
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "fixturelint",
		Short: "Fixture corpus consistency checker",
		Long: `Checks a parser test-fixture corpus: every file under input/ needs a matching
file under expected_kdl/ unless its name ends with _fail, no file under
expected_kdl/ may lack an input, and every expected output must end with a newline.`,
		Version: version,
		Args:    cobra.NoArgs,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, commands.ErrViolations) {
			return exitViolations
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}
	return exitOK
}

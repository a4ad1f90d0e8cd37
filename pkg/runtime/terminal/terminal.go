package terminal

import (
	"context"
	"io"
	"os"

	"github.com/fit-tools/fittrack/pkg/runtime/terminal/commands"
	"github.com/fit-tools/fittrack/pkg/runtime/terminal/export"

	"github.com/fit-tools/fittrack/pkg/services/workout"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry workout.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry workout.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = workout.NewDefaultRegistry()
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fittrack",
		Short: "Workout statistics calculator",
	}

	cmd.AddCommand(commands.NewProcessCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewTypesCmd(cli.registry))

	return cmd
}

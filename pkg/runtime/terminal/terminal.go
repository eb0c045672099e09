package terminal

import (
	"context"
	"io"
	"os"

	"github.com/sm-tools/social-pulse/pkg/runtime/terminal/commands"
	tableexport "github.com/sm-tools/social-pulse/pkg/runtime/terminal/export"
	"github.com/sm-tools/social-pulse/pkg/services/source"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	sources source.Registry
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Sources source.Registry
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{sources: opts.Sources}
	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	tableReporter := tableexport.NewReporter(output)
	plainReporter := NewReporter(output)

	analyzeCmd := commands.NewAnalyzeCmd(cli.sources, tableReporter)

	cmd := &cobra.Command{
		Use:   "socialpulse",
		Short: "Brand social media analytics and reporting tool",
		// a bare invocation runs the full pipeline on the built-in dataset
		RunE: analyzeCmd.RunE,
	}
	cmd.SetOut(output)

	cmd.AddCommand(analyzeCmd)
	cmd.AddCommand(commands.NewReportCmd(cli.sources, plainReporter))
	cmd.AddCommand(commands.NewExportCmd(cli.sources))
	cmd.AddCommand(commands.NewDashboardCmd(cli.sources))
	cmd.AddCommand(commands.NewSeedCmd(cli.sources))
	cmd.AddCommand(commands.NewSourcesCmd(cli.sources))

	return cmd
}

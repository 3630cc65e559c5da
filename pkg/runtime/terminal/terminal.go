package terminal

import (
	"io"
	"os"

	"github.com/de-tools/finreport/pkg/runtime/terminal/commands"
	"github.com/de-tools/finreport/pkg/services/source"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry source.Registry
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  source.Registry
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	// Args overrides os.Args[1:] when non-nil
	Args []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Registry == nil {
		opts.Registry = source.DefaultRegistry()
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{registry: opts.Registry}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := commands.NewReportCmd(cli.registry, commands.Streams{
		In:     opts.Input,
		Out:    opts.Output,
		ErrOut: opts.ErrOutput,
	})
	cmd.SilenceErrors = true
	cmd.SetIn(opts.Input)
	cmd.SetOut(opts.Output)
	cmd.SetErr(opts.ErrOutput)
	if opts.Args != nil {
		cmd.SetArgs(opts.Args)
	}
	return cmd
}

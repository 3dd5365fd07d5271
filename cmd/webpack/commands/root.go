// Package commands implements the command line surface of the webpack bootstrap.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/webpack/internal/app"
	"go.trai.ch/webpack/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for webpack.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
// Flags are not parsed: every argument, --help and --version included, belongs to the companion.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:   "webpack [args...]",
		Short: "Run the webpack CLI, offering to install it when missing",
		Long: "webpack locates webpack-cli or webpack-command in node_modules and runs it.\n" +
			"When neither is installed it asks which one to add with npm or yarn.",
		Version:            build.Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to determine working directory")
			}
			return c.app.Run(cmd.Context(), cwd, args)
		},
	}

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

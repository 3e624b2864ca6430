// Package cli implements the structgrid command-line interface.
//
// # Commands
//
//   - generate: build a grid from a config file and/or flags, then write the
//     vertex dump and the mesh plot
//   - query: build a grid and print a vertex, its neighbours or its cell
//   - config: print the effective configuration as TOML or YAML
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Each
// invocation gets a logger tagged with a random run id, passed to the
// commands through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "structgrid",
		Short:        "structgrid generates structured grids under an inlet contour",
		Long:         `structgrid builds logically rectangular computational grids whose height follows an inlet contour, with uniform or tanh-clustered wall spacing, and exports them as vertex dumps and plots.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			logger := c.Logger.With("run", uuid.NewString())
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newConfigCmd())

	return root
}

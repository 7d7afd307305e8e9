// Package cli implements the topoviz command-line interface.
//
// The root command with no arguments reproduces the classic behavior:
// render all three topologies (linear, ring, star) as PNG files in the
// working directory and print a confirmation line per file. Subcommands
// expose the same renderer with more control:
//
//   - render: selected variants, output formats, output directory, style
//   - serve: HTTP server that renders diagrams on demand
//   - export: graph structure and positions as JSON
//   - routes: per-node shortest-path routing tables
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/buildinfo"
)

// Execute runs the topoviz CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command with all subcommands attached.
// Running the root command itself renders all three topologies as PNG
// files into the working directory.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "topoviz",
		Short:        "Topoviz draws classic network topology diagrams",
		Long:         `Topoviz renders the classic 5-node network topologies (linear, ring, star) as diagram files. Run without arguments to generate linear_topology.png, ring_topology.png, and star_topology.png in the current directory.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, nil, defaultRenderOpts())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newRoutesCmd())

	return root
}

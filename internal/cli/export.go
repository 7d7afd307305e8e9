package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/graph"
	"github.com/topoviz/topoviz/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	outputDir string
}

// newExportCmd creates the export command, which writes each topology's
// graph structure and node positions as a JSON file.
func newExportCmd() *cobra.Command {
	opts := &exportOpts{}

	cmd := &cobra.Command{
		Use:   "export [topology...]",
		Short: "Export topology graphs as JSON",
		Long:  `Export writes the node-link structure and drawing positions of the selected topologies (default: all) as JSON files, one per topology.`,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default: working directory)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *exportOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	variants, err := parseVariants(args)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(logger)
	prog := newProgress(logger)

	for _, v := range variants {
		doc, err := runner.Export(ctx, v)
		if err != nil {
			return err
		}

		path := v.Filename("json")
		if opts.outputDir != "" {
			path = filepath.Join(opts.outputDir, path)
		}
		if err := graph.WriteFile(doc, path); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailure, err, "write %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	}

	prog.done(fmt.Sprintf("Exported %d topolog%s", len(variants), pluralY(len(variants))))
	return nil
}

// pluralY returns "y" or "ies" for topology counts.
func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

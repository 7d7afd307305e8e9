package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/pipeline"
	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/topology"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir string   // directory for output files (default: working directory)
	formats   []string // output formats: "png", "svg", "dot"
	styleFile string   // optional TOML style file
}

// defaultRenderOpts returns the options used by the bare root invocation:
// PNG output into the working directory, default style.
func defaultRenderOpts() *renderOpts {
	return &renderOpts{formats: []string{pipeline.FormatPNG}}
}

// newRenderCmd creates the render command for generating diagram files.
//
// With no arguments all three topologies are rendered; otherwise only the
// named ones, in the given order. Formats may be combined, producing one
// file per topology and format.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [topology...]",
		Short: "Render topology diagrams to files",
		Long:  `Render draws the selected topologies (default: linear, ring, star) and writes one file per topology and format into the output directory.`,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default: working directory)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.styleFile, "style", "s", "", "TOML style file overriding the default look")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}

// parseVariants converts positional arguments to topology variants.
// No arguments selects all variants in canonical order.
func parseVariants(args []string) ([]topology.Variant, error) {
	if len(args) == 0 {
		return topology.Variants(), nil
	}
	variants := make([]topology.Variant, 0, len(args))
	for _, arg := range args {
		v, err := topology.Parse(arg)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// loadStyle resolves the style for a command: the default look, or the
// default merged with overrides from a TOML file.
func loadStyle(path string) (render.Style, error) {
	if path == "" {
		return render.DefaultStyle(), nil
	}
	return render.LoadStyle(path)
}

// runRender renders the selected variants and writes one file per
// variant/format combination, printing a confirmation line for each.
// The first failure aborts the run; remaining files are not attempted.
func runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	variants, err := parseVariants(args)
	if err != nil {
		return err
	}
	for _, f := range opts.formats {
		if err := pipeline.ValidateFormat(f); err != nil {
			return err
		}
	}
	style, err := loadStyle(opts.styleFile)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(logger)
	prog := newProgress(logger)
	saved := 0

	for _, format := range opts.formats {
		results, err := runner.RenderAll(ctx, variants, format, style)
		if err != nil {
			return err
		}
		for _, res := range results {
			path := res.Filename
			if opts.outputDir != "" {
				path = filepath.Join(opts.outputDir, res.Filename)
			}
			if err := os.WriteFile(path, res.Data, 0644); err != nil {
				return errors.Wrap(errors.ErrCodeWriteFailure, err, "write %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			saved++
		}
	}

	prog.done(fmt.Sprintf("Rendered %d diagram(s)", saved))
	return nil
}

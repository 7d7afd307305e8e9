// Package pipeline provides the build → layout → render pipeline shared by
// the CLI and the HTTP server.
//
// Centralizing the pipeline keeps both entry points behaviorally identical:
// the same variant always produces the same graph, layout, and artifact
// bytes regardless of how the render was requested.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Render(ctx, pipeline.Options{
//	    Variant: topology.Ring,
//	    Format:  pipeline.FormatPNG,
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile(result.Filename, result.Data, 0644)
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/graph"
	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// Formats returns all supported output formats.
func Formats() []string {
	return []string{FormatPNG, FormatSVG, FormatDOT}
}

// ValidateFormat checks that the format is in the closed set.
func ValidateFormat(format string) error {
	switch format {
	case FormatPNG, FormatSVG, FormatDOT:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown format: %q (must be 'png', 'svg', or 'dot')", format)
	}
}

// Options configures a single render.
type Options struct {
	// Variant selects the topology. Required.
	Variant topology.Variant
	// Format is the output format. Empty means PNG.
	Format string
	// Style controls the diagram appearance. The zero value means the
	// default style.
	Style render.Style
}

// Result holds a rendered artifact.
type Result struct {
	Variant  topology.Variant
	Format   string
	Filename string // canonical output name, e.g. "ring_topology.png"
	Data     []byte
	RunID    string // correlates log lines for this render
	Duration time.Duration
}

// Runner executes render pipelines.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner.
// A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger}
}

// Render builds the variant's graph and layout, draws it, and returns the
// artifact bytes. Each invocation constructs everything fresh; nothing is
// shared between renders.
func (r *Runner) Render(ctx context.Context, opts Options) (*Result, error) {
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	start := time.Now()
	r.logger.Debug("render start", "run", runID, "variant", opts.Variant, "format", format)

	g, err := topology.Build(opts.Variant)
	if err != nil {
		return nil, err
	}
	pos, err := topology.Positions(opts.Variant)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("graph built", "run", runID, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	dot, err := render.ToDOT(g, pos, render.Options{
		Title: opts.Variant.Title(),
		Style: opts.Style,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = render.RenderSVG(dot)
	case FormatPNG:
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	r.logger.Debug("render done", "run", runID, "variant", opts.Variant, "bytes", len(data), "elapsed", elapsed.Round(time.Millisecond))

	return &Result{
		Variant:  opts.Variant,
		Format:   format,
		Filename: opts.Variant.Filename(format),
		Data:     data,
		RunID:    runID,
		Duration: elapsed,
	}, nil
}

// RenderAll renders every requested variant sequentially with the same
// format and style. The first failure aborts the remaining renders; there
// is no per-topology isolation.
func (r *Runner) RenderAll(ctx context.Context, variants []topology.Variant, format string, style render.Style) ([]*Result, error) {
	results := make([]*Result, 0, len(variants))
	for _, v := range variants {
		res, err := r.Render(ctx, Options{Variant: v, Format: format, Style: style})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// NodeRoutes is one node's shortest-path routing table.
type NodeRoutes struct {
	Node   int           `json:"node"`
	Routes []graph.Route `json:"routes"`
}

// Routes builds the variant's graph and computes every node's routing
// table over unit-cost links, in ascending node order.
func (r *Runner) Routes(ctx context.Context, v topology.Variant) ([]NodeRoutes, error) {
	g, err := topology.Build(v)
	if err != nil {
		return nil, err
	}
	tables := make([]NodeRoutes, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		routes, err := g.RoutingTable(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "routes %s", v)
		}
		tables = append(tables, NodeRoutes{Node: n, Routes: routes})
	}
	return tables, nil
}

// Export builds the variant's graph and layout and returns the JSON
// document describing them.
func (r *Runner) Export(ctx context.Context, v topology.Variant) (graph.Document, error) {
	g, err := topology.Build(v)
	if err != nil {
		return graph.Document{}, err
	}
	pos, err := topology.Positions(v)
	if err != nil {
		return graph.Document{}, err
	}
	doc, err := graph.NewDocument(string(v), v.Title(), g, pos)
	if err != nil {
		return graph.Document{}, errors.Wrap(errors.ErrCodeInternal, err, "export %s", v)
	}
	return doc, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/pipeline"
)

// newRoutesCmd creates the routes command, which prints each node's
// shortest-path routing table for the selected topologies.
func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes [topology...]",
		Short: "Print shortest-path routing tables",
		Long:  `Routes computes per-node shortest-path routing tables over the selected topologies (default: all), treating every link as cost 1, and prints one line per route: source, destination, next hop, and hop count.`,
		Args:  cobra.ArbitraryArgs,
		RunE:  runRoutes,
	}
}

func runRoutes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	variants, err := parseVariants(args)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(logger)
	out := cmd.OutOrStdout()

	for i, v := range variants {
		if i > 0 {
			fmt.Fprintln(out)
		}
		tables, err := runner.Routes(ctx, v)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v.Title())
		for _, tab := range tables {
			for _, route := range tab.Routes {
				fmt.Fprintf(out, "  %d -> %d via %d cost %d\n", tab.Node, route.Dest, route.NextHop, route.Cost)
			}
		}
	}
	return nil
}

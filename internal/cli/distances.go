package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/errand/dijkstra"
)

func newDistancesCmd() *cobra.Command {
	var (
		from    int
		maxDist int64
	)

	cmd := &cobra.Command{
		Use:   "distances FILE",
		Short: "Print shortest distances from one vertex",
		Long:  `Prints one "vertex distance" line per vertex; unreachable vertices show "inf".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if maxDist < 0 {
				return fmt.Errorf("--max-distance must be non-negative, got %d", maxDist)
			}
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			opts := []dijkstra.Option{dijkstra.Source(from), dijkstra.WithContext(ctx)}
			if cmd.Flags().Changed("max-distance") {
				opts = append(opts, dijkstra.WithMaxDistance(maxDist))
			}
			dist, _, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			for v, d := range dist {
				if d == dijkstra.Inf {
					fmt.Fprintf(out, "%d inf\n", v)
					continue
				}
				fmt.Fprintf(out, "%d %d\n", v, d)
			}
			return out.Flush()
		},
	}

	cmd.Flags().IntVar(&from, "from", dijkstra.Unset, "source vertex")
	cmd.Flags().Int64Var(&maxDist, "max-distance", 0, "stop exploring beyond this distance")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/errand/bfs"
)

func newCenterCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "center FILE",
		Short: "Print the graph center and its eccentricity",
		Long:  `Runs a breadth-first search from every vertex and prints the vertex with the smallest eccentricity (lowest id on ties) followed by that eccentricity. Edge weights are ignored.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}
			if !bfs.Connected(g) {
				if strict {
					return fmt.Errorf("graph %s is disconnected", args[0])
				}
				logger.Warn("graph is disconnected; eccentricities cover each source's component only")
			}

			prog := newProgress(logger)
			c, ecc, err := bfs.Center(g, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			prog.done("center found", "vertex", c)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), c, ecc)
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on a disconnected graph instead of warning")

	return cmd
}

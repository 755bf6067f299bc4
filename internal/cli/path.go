package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/errand/dijkstra"
)

// errandFlags holds the query flags of the path command.
type errandFlags struct {
	from, to      int
	first, second string
}

func newPathCmd() *cobra.Command {
	var f errandFlags

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the cheapest walk through a first stop and then a second stop",
		Long: `Finds the minimum-weight walk from --from to --to that visits one vertex of
--first and then, at the same vertex or later, one vertex of --second.
Prints the total weight followed by the walk.`,
		Example: `  errand path graph.txt --from 0 --to 8 --first 1,5,8 --second 4,6`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			first, err := parseIDs(f.first)
			if err != nil {
				return fmt.Errorf("--first: %w", err)
			}
			second, err := parseIDs(f.second)
			if err != nil {
				return fmt.Errorf("--second: %w", err)
			}
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := dijkstra.Errand(g,
				dijkstra.Source(f.from),
				dijkstra.Destination(f.to),
				dijkstra.Via(first, second),
				dijkstra.WithContext(ctx),
			)
			if err != nil {
				return err
			}
			prog.done("errand solved", "first", res.FirstStop(), "second", res.SecondStop())

			return printErrand(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVar(&f.from, "from", dijkstra.Unset, "source vertex")
	cmd.Flags().IntVar(&f.to, "to", dijkstra.Unset, "destination vertex")
	cmd.Flags().StringVar(&f.first, "first", "", "comma-separated first stop set")
	cmd.Flags().StringVar(&f.second, "second", "", "comma-separated second stop set")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// printErrand writes "weight [walk]".
func printErrand(w io.Writer, res *dijkstra.Result) error {
	_, err := fmt.Fprintln(w, res.Weight, res.Walk)
	return err
}

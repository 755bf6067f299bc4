// Package cli implements the errand command-line interface.
//
// # Commands
//
//   - center:    vertex of minimum eccentricity and that eccentricity
//   - path:      cheapest walk visiting a first stop, then a second stop
//   - distances: single-source shortest distances
//   - batch:     many path queries from a TOML file, run in parallel
//
// Every command reads its graph from an edge-list file (see package
// edgelist).
//
// # Logging
//
// Logs go to stderr through charmbracelet/log, or to a rotating file with
// --log-file. --verbose enables debug level. Loggers travel through
// context.Context; results are printed to stdout.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd assembles the root command and its subcommands.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logFile string
		sink    io.WriteCloser
	)

	root := &cobra.Command{
		Use:           "errand",
		Short:         "Graph center and ordered-errand shortest paths",
		Long:          `errand loads a weighted undirected graph from an edge list and answers two queries: the graph center, and the cheapest walk that visits one vertex of a first set and then one vertex of a second set on its way to a destination.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			var w io.Writer = cmd.ErrOrStderr()
			if logFile != "" {
				sink = rotatingFile(logFile)
				w = sink
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if sink == nil {
				return nil
			}
			return sink.Close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("errand %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a rotating file instead of stderr")

	root.AddCommand(newCenterCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newDistancesCmd())
	root.AddCommand(newBatchCmd())

	return root
}

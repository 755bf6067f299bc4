package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/errand/bfs"
	"github.com/katalvlaran/errand/core"
	"github.com/katalvlaran/errand/dijkstra"
)

// batchConfig is the TOML document accepted by "errand batch".
//
//	graph   = "city.txt"   # relative to the config file
//	workers = 4            # optional, defaults to GOMAXPROCS
//	center  = true         # also print the graph center
//
//	[[errand]]
//	name   = "ice cream"
//	from   = 0
//	to     = 8
//	first  = [1, 5, 8]
//	second = [4, 6]
type batchConfig struct {
	Graph   string      `toml:"graph"`
	Workers int         `toml:"workers"`
	Center  bool        `toml:"center"`
	Errands []errandJob `toml:"errand"`
}

// errandJob is one path query of a batch.
type errandJob struct {
	Name   string `toml:"name"`
	From   int    `toml:"from"`
	To     int    `toml:"to"`
	First  []int  `toml:"first"`
	Second []int  `toml:"second"`
}

// label names a job in output, falling back to its position.
func (j errandJob) label(i int) string {
	if j.Name != "" {
		return j.Name
	}
	return fmt.Sprintf("errand #%d", i+1)
}

// loadBatchConfig decodes path and resolves the graph file next to it.
// Unknown keys are rejected so typos do not silently drop queries.
func loadBatchConfig(path string) (*batchConfig, error) {
	var cfg batchConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Graph == "" {
		return nil, fmt.Errorf("decode %s: graph is required", path)
	}
	if !filepath.IsAbs(cfg.Graph) {
		cfg.Graph = filepath.Join(filepath.Dir(path), cfg.Graph)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return &cfg, nil
}

// batchOutcome is the printed result of one job.
type batchOutcome struct {
	res *dijkstra.Result
	err error
}

// runBatch answers every job over the shared read-only graph with at most
// cfg.Workers queries in flight. Per-job failures such as ErrNoPath are
// recorded in the outcome; only cancellation aborts the batch.
func runBatch(ctx context.Context, g *core.Graph, cfg *batchConfig) ([]batchOutcome, error) {
	out := make([]batchOutcome, len(cfg.Errands))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i := range cfg.Errands {
		i, job := i, cfg.Errands[i]
		eg.Go(func() error {
			res, err := dijkstra.Errand(g,
				dijkstra.Source(job.From),
				dijkstra.Destination(job.To),
				dijkstra.Via(job.First, job.Second),
				dijkstra.WithContext(ctx),
			)
			if isCanceled(err) {
				return err
			}
			out[i] = batchOutcome{res: res, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// printBatch writes one "label: weight [walk]" or "label: error" line per job.
func printBatch(w io.Writer, cfg *batchConfig, outcomes []batchOutcome) error {
	for i, o := range outcomes {
		label := cfg.Errands[i].label(i)
		var err error
		if o.err != nil {
			_, err = fmt.Fprintf(w, "%s: error: %v\n", label, o.err)
		} else {
			_, err = fmt.Fprintf(w, "%s: %d %v\n", label, o.res.Weight, o.res.Walk)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch CONFIG",
		Short: "Run many errand queries described in a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadBatchConfig(args[0])
			if err != nil {
				return err
			}
			g, err := loadGraph(ctx, cfg.Graph)
			if err != nil {
				return err
			}

			if cfg.Center {
				c, ecc, err := bfs.Center(g, bfs.WithContext(ctx))
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "center: %d %d\n", c, ecc); err != nil {
					return err
				}
			}

			prog := newProgress(logger)
			outcomes, err := runBatch(ctx, g, cfg)
			if err != nil {
				return err
			}
			failed := 0
			for _, o := range outcomes {
				if o.err != nil {
					failed++
				}
			}
			prog.done("batch finished", "errands", len(outcomes), "failed", failed, "workers", cfg.Workers)

			return printBatch(cmd.OutOrStdout(), cfg, outcomes)
		},
	}
}

// isCanceled reports whether err stems from context cancellation or expiry.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

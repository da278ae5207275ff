// Command lasso reconstructs trees and quartet systems from distance matrices.
//
//	lasso rooted   --matrix m.yaml [--clique exact] [--updater modal]
//	               [--max-calls n] [--max-depth d] [--time-limit 500ms]
//	lasso unrooted --matrix m.yaml [--seed minimum]
//	lasso quartets --matrix m.yaml [--enrich]
//	lasso complete --matrix m.yaml [--closure]
//
// Settings come from --config (YAML/JSON), then LASSO_* variables, then flags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lasso/config"
	"github.com/katalvlaran/lasso/lasso"
	"github.com/katalvlaran/lasso/matrix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lasso:", err)
		os.Exit(1)
	}
}

// flags holds the values shared by every subcommand.
type flags struct {
	matrixPath string
	configPath string
	finder     string
	updater    string
	seed       string
	enrich     bool
	closure    bool
	maxCalls   int
	maxDepth   int
	timeLimit  time.Duration
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "lasso",
		Short:         "Reconstruct trees and quartet systems from partial distance matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.matrixPath, "matrix", "m", "", "distance matrix file (YAML or JSON: {taxa, rows})")
	pf.StringVarP(&f.configPath, "config", "c", "", "run configuration file (YAML or JSON)")
	pf.StringVar(&f.finder, "clique", "", "clique finder: heuristic|exact")
	pf.StringVar(&f.updater, "updater", "", "distance updater: modal|min|max|mean")
	pf.StringVar(&f.seed, "seed", "", "chordal seed strategy: depth|breadth|minimum")
	pf.BoolVar(&f.enrich, "enrich", false, "complete the matrix by the four-point condition before deriving quartets")
	pf.BoolVar(&f.closure, "closure", false, "fill what four-point completion leaves unknown with shortest-path lengths")
	pf.IntVar(&f.maxCalls, "max-calls", 0, "recursion budget of each exact clique search (0 = unbounded)")
	pf.IntVar(&f.maxDepth, "max-depth", -1, "recursion depth bound of each exact clique search (-1 = unbounded)")
	pf.DurationVar(&f.timeLimit, "time-limit", 0, "wall-clock budget of each exact clique search (0 = unbounded)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
	_ = root.MarkPersistentFlagRequired("matrix")

	root.AddCommand(
		&cobra.Command{
			Use:   "rooted",
			Short: "Reconstruct a rooted tree",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runTree(cmd, f, lasso.Rooted)
			},
		},
		&cobra.Command{
			Use:   "unrooted",
			Short: "Reconstruct an unrooted tree",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runTree(cmd, f, lasso.Unrooted)
			},
		},
		&cobra.Command{
			Use:   "quartets",
			Short: "Derive the weighted quartet system",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runQuartets(cmd, f)
			},
		},
		&cobra.Command{
			Use:   "complete",
			Short: "Complete the matrix and print it as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runComplete(cmd, f)
			},
		},
	)

	return root
}

// setup resolves configuration, the logger and the input matrix.
func setup(cmd *cobra.Command, f *flags) (*matrix.Distance, []lasso.Option, *zap.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("clique") {
		cfg.CliqueFinder = f.finder
	}
	if fl.Changed("updater") {
		cfg.DistanceUpdater = f.updater
	}
	if fl.Changed("seed") {
		cfg.ChordalSeed = f.seed
	}
	if fl.Changed("enrich") {
		cfg.Enrich = f.enrich
	}
	if fl.Changed("closure") {
		cfg.Closure = f.closure
	}
	if fl.Changed("max-calls") {
		cfg.Exact.MaxCalls = f.maxCalls
	}
	if fl.Changed("max-depth") {
		cfg.Exact.MaxDepth = f.maxDepth
	}
	if fl.Changed("time-limit") {
		cfg.Exact.TimeLimit = f.timeLimit.String()
	}
	if f.verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}
	if err = cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := matrix.LoadFile(f.matrixPath)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}

	return m, cfg.Options(logger), logger, nil
}

type treeDriver func(context.Context, *matrix.Distance, ...lasso.Option) (*lasso.Result, error)

func runTree(cmd *cobra.Command, f *flags, drive treeDriver) error {
	m, opts, logger, err := setup(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := drive(cmd.Context(), m, opts...)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), res)
}

func writeResult(w io.Writer, res *lasso.Result) error {
	if err := lasso.WriteForest(w, lasso.NewickWriter{}, res); err != nil {
		return err
	}
	if !res.Complete {
		_, err := fmt.Fprintf(w, "# incomplete: %d trees after %d merges\n", len(res.Forest), res.Merges)
		return err
	}

	return nil
}

func runQuartets(cmd *cobra.Command, f *flags) error {
	m, opts, logger, err := setup(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := lasso.Quartets(cmd.Context(), m, opts...)
	if err != nil {
		return err
	}

	return lasso.TextQuartetWriter{}.WriteQuartets(cmd.OutOrStdout(), res.System)
}

func runComplete(cmd *cobra.Command, f *flags) error {
	m, opts, logger, err := setup(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := lasso.Complete(cmd.Context(), m, opts...)
	if err != nil {
		return err
	}
	out, err := matrix.Encode(res.Matrix)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)

	return err
}

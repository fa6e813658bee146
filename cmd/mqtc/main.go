// Command mqtc reconstructs an unrooted ternary tree over the items named
// by an n×n distance matrix read from standard input, hill-climbing a
// population of candidate trees toward a perfect quartet embedding.
//
// Usage: mqtc <generations>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/linehan/mqtc/matrix"
	"github.com/linehan/mqtc/matrixio"
	"github.com/linehan/mqtc/render"
	"github.com/linehan/mqtc/runlog"
	"github.com/linehan/mqtc/search"
)

func main() {
	var (
		flagSeed    int64
		flagLogDir  string
		flagVerbose bool
	)

	pflag.Int64Var(&flagSeed, "seed", 0, "fix the random source for deterministic runs (0 = wall-clock)")
	pflag.StringVar(&flagLogDir, "log-dir", "", "directory for alias/mutate/cost/fitness.log (empty disables logging)")
	pflag.BoolVarP(&flagVerbose, "verbose", "v", false, "emit operational logging to stderr")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Println("Usage: mqtc <generations>")
		os.Exit(0)
	}
	generations, err := strconv.Atoi(pflag.Arg(0))
	if err != nil || generations <= 0 {
		fmt.Println("Usage: mqtc <generations>")
		os.Exit(0)
	}

	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.InfoLevel
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("invariant violation")
			fmt.Fprintln(os.Stderr, "mqtc: aborted:", r)
			os.Exit(2)
		}
	}()

	if err := run(log, generations, flagSeed, flagLogDir); err != nil {
		log.Error().Err(err).Msg("run failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(1)
}

func run(log zerolog.Logger, generations int, seed int64, logDir string) error {
	log.Info().Msg("reading distance matrix from stdin")
	d, err := matrixio.ReadSquare(os.Stdin)
	if err != nil {
		return fmt.Errorf("mqtc: read matrix: %w", err)
	}
	log.Info().Int("n", d.Rows()).Msg("matrix read complete")
	if err := matrix.ValidateSymmetric(d, 1e-6); err != nil {
		log.Warn().Err(err).Msg("distance matrix is not symmetric within tolerance")
	}

	opts := []search.RunnerOption{search.WithSeed(seed)}

	var logFiles *runlog.Files
	if logDir != "" {
		logFiles, err = runlog.Open(logDir)
		if err != nil {
			return fmt.Errorf("mqtc: open logs: %w", err)
		}
		defer logFiles.Close()
		opts = append(opts, search.WithLogger(logFiles))
	}

	runner, err := search.NewRunner(d.Rows(), d, opts...)
	if err != nil {
		return fmt.Errorf("mqtc: build runner: %w", err)
	}
	init := runner.InitialScaled()
	log.Info().Floats64("init_scaled", init).Msg("initial population scored")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	champion, err := runner.Run(ctx, generations)
	if err != nil && err != context.Canceled {
		return fmt.Errorf("mqtc: run: %w", err)
	}
	log.Info().Float64("best_cost", runner.BestCost()).Msg("search complete")

	fmt.Println(render.Tree(champion))
	fmt.Printf("best:%g init:", runner.BestCost())
	for _, s := range init {
		fmt.Printf("%g ", s)
	}
	fmt.Println()

	return nil
}

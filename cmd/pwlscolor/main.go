// Command pwlscolor solves a graph-coloring instance with Partial-
// Weighting Local Search, seeded the same way cwlscolor is.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/graphsolve/dogscolor/driver"
	"github.com/graphsolve/dogscolor/internal/cliutil"
	"github.com/graphsolve/dogscolor/stopping"
)

const (
	defaultTenureL      = 10
	defaultTenureLambda = 0.6
)

func main() {
	flags := &cliutil.Flags{}
	cmd := &cobra.Command{
		Use:   "pwlscolor",
		Short: "Solve graph coloring with Partial-Weighting Local Search",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
		SilenceUsage: true,
	}
	flags.Register(cmd)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(flags *cliutil.Flags) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	g, err := cliutil.LoadGraph(flags)
	if err != nil {
		return err
	}

	start := time.Now()
	seedColoring := cliutil.SeedColoring(g)
	logger.Info().Int("colors", len(seedColoring)).Dur("elapsed", time.Since(start)).Msg("seed coloring built")

	result, err := driver.RunColoring(g, seedColoring, "pwls",
		stopping.NewTimeLimit(flags.Time),
		driver.Config{TenureL: defaultTenureL, TenureLambda: defaultTenureLambda, LogEvery: 2 * time.Second},
		logger,
	)
	if err != nil {
		return err
	}

	if err := cliutil.WriteColoringSolution(g, flags, result.Partition); err != nil {
		return err
	}
	if flags.Perf != "" {
		if err := driver.WriteStats(flags.Perf, driver.Stats{
			Problem: "coloring", Algorithm: "pwls", BestSize: result.NumColors,
			Iterations: result.Iterations, Feasible: result.Feasible,
			ElapsedSeconds: time.Since(start).Seconds(),
		}); err != nil {
			return err
		}
	}
	fmt.Printf("colors: %d, feasible: %v, iterations: %d\n", result.NumColors, result.Feasible, result.Iterations)
	return nil
}

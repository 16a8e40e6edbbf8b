package driver

import (
	"errors"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/graphsolve/dogscolor/checker"
	"github.com/graphsolve/dogscolor/clique"
	"github.com/graphsolve/dogscolor/coloring"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/internal/rng"
	"github.com/graphsolve/dogscolor/stopping"
)

// Per-problem stream identifiers fed to rng.DeriveSeed, so a coloring core
// and a clique core started from the same Config.Seed draw independent
// tabu randomness.
const (
	streamColoring uint64 = iota + 1
	streamClique
)

// ErrInfeasibleSeed wraps a checker failure on the seed solution handed to
// a core: seed heuristics are expected to always produce a feasible
// starting point, so this indicates a bug in the heuristic rather than a
// runtime condition the core can recover from.
var ErrInfeasibleSeed = errors.New("driver: seed solution is infeasible")

// Config gathers the tenure parameters every core needs plus the logging
// cadence.
type Config struct {
	TenureL      int
	TenureLambda float64
	Seed         int64

	// LogEvery is the minimum wall-clock gap between periodic metric
	// lines; zero disables periodic logging entirely.
	LogEvery time.Duration
}

// Instrumented is implemented by every local-search core so the driver can
// read its progress without reaching into algorithm-specific state.
type Instrumented interface {
	Iterations() int64
	BestSize() int
	Metric() int64
}

// Stats is the final JSON statistics blob written at termination.
type Stats struct {
	Problem        string  `json:"problem"`   // "coloring" or "clique"
	Algorithm      string  `json:"algorithm"` // "cwls" or "pwls"
	BestSize       int     `json:"best_size"` // colors used, or clique size
	Iterations     int64   `json:"iterations"`
	Feasible       bool    `json:"feasible"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// WriteStats serializes stats as JSON to path.
func WriteStats(path string, stats Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("driver: writing statistics: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(stats)
}

// loggingCriterion decorates a stopping.Criterion with a periodic metric
// line: every core already polls IsFinished once per repair iteration and
// once per merge/delete phase, so that same call site samples progress
// with no need for per-core logging hooks.
type loggingCriterion struct {
	inner    stopping.Criterion
	src      Instrumented
	logger   zerolog.Logger
	interval time.Duration
	label    string
	started  time.Time
	lastLog  time.Time
}

func (l *loggingCriterion) IsFinished() bool {
	if l.interval > 0 {
		now := time.Now()
		if now.Sub(l.lastLog) >= l.interval {
			l.lastLog = now
			l.logger.Info().
				Str("phase", l.label).
				Dur("elapsed", now.Sub(l.started)).
				Int64("iteration", l.src.Iterations()).
				Int("best_size", l.src.BestSize()).
				Int64("metric", l.src.Metric()).
				Msg("search progress")
		}
	}
	return l.inner.IsFinished()
}

func wrap(stop stopping.Criterion, src Instrumented, logger zerolog.Logger, cfg Config, label string) stopping.Criterion {
	now := time.Now()
	return &loggingCriterion{inner: stop, src: src, logger: logger, interval: cfg.LogEvery, label: label, started: now, lastLog: now}
}

// RunColoring checks seedPartition for feasibility, builds the requested
// coloring core ("cwls" or "pwls"), and runs it to completion under stop.
func RunColoring(g graph.Graph, seedPartition [][]int, algo string, stop stopping.Criterion, cfg Config, logger zerolog.Logger) (coloring.Result, error) {
	if err := checker.CheckColoring(g, seedPartition); err != nil {
		return coloring.Result{}, fmt.Errorf("%w: %w", ErrInfeasibleSeed, err)
	}

	start := time.Now()
	var (
		result coloring.Result
		label  = "coloring/" + algo
		seed   = rng.DeriveSeed(cfg.Seed, streamColoring)
	)
	switch algo {
	case "cwls":
		core := coloring.NewCWLS(g, seedPartition, coloring.CWLSParams{TenureL: cfg.TenureL, TenureLambda: cfg.TenureLambda, Seed: seed})
		result = core.Run(wrap(stop, core, logger, cfg, label))
	case "pwls":
		core := coloring.NewPWLS(g, seedPartition, coloring.PWLSParams{TenureL: cfg.TenureL, TenureLambda: cfg.TenureLambda, Seed: seed})
		result = core.Run(wrap(stop, core, logger, cfg, label))
	default:
		return coloring.Result{}, fmt.Errorf("driver: unknown coloring algorithm %q", algo)
	}

	logger.Info().
		Str("phase", label).
		Int("colors", result.NumColors).
		Bool("feasible", result.Feasible).
		Int64("iterations", result.Iterations).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return result, nil
}

// RunClique checks seedClique for feasibility, builds the requested clique
// core ("cwls" or "pwls"), and runs it to completion under stop.
func RunClique(g graph.Graph, seedClique []int, algo string, stop stopping.Criterion, cfg Config, logger zerolog.Logger) (clique.Result, error) {
	if err := checker.CheckClique(g, seedClique); err != nil {
		return clique.Result{}, fmt.Errorf("%w: %w", ErrInfeasibleSeed, err)
	}

	start := time.Now()
	var (
		result clique.Result
		label  = "clique/" + algo
		seed   = rng.DeriveSeed(cfg.Seed, streamClique)
	)
	switch algo {
	case "cwls":
		core := clique.NewCWLS(g, seedClique, clique.CWLSParams{TenureL: cfg.TenureL, TenureLambda: cfg.TenureLambda, Seed: seed})
		result = core.Run(wrap(stop, core, logger, cfg, label))
	case "pwls":
		core := clique.NewPWLS(g, seedClique, clique.PWLSParams{TenureL: cfg.TenureL, TenureLambda: cfg.TenureLambda, Seed: seed})
		result = core.Run(wrap(stop, core, logger, cfg, label))
	default:
		return clique.Result{}, fmt.Errorf("driver: unknown clique algorithm %q", algo)
	}

	logger.Info().
		Str("phase", label).
		Int("size", result.Size).
		Int64("iterations", result.Iterations).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return result, nil
}

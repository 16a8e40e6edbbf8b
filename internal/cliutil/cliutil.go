// Package cliutil holds the flag surface and instance-loading plumbing
// shared by the four cmd/* binaries: one binary per
// solver, all agreeing on --instance/--type/--time/--solution/--perf.
package cliutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphsolve/dogscolor/checker"
	"github.com/graphsolve/dogscolor/graph"
	"github.com/graphsolve/dogscolor/ioformat/cgshop"
	"github.com/graphsolve/dogscolor/ioformat/dimacs"
	"github.com/graphsolve/dogscolor/seed"
)

// Flags is the common flag set every solver binary exposes.
type Flags struct {
	Instance string
	Type     string
	Time     float64
	Solution string
	Perf     string
}

// Register attaches the common flags to cmd and marks the required ones.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Instance, "instance", "", "path to the input instance")
	cmd.Flags().StringVar(&f.Type, "type", "", "instance format: dimacs or cgshop")
	cmd.Flags().Float64Var(&f.Time, "time", 0, "time budget in seconds")
	cmd.Flags().StringVar(&f.Solution, "solution", "", "path to write the solution (optional)")
	cmd.Flags().StringVar(&f.Perf, "perf", "", "path to write JSON statistics (optional)")
	_ = cmd.MarkFlagRequired("instance")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("time")
}

// LoadGraph dispatches to the DIMACS or CGSHOP loader according to f.Type.
func LoadGraph(f *Flags) (graph.Graph, error) {
	switch f.Type {
	case "dimacs":
		return dimacs.Load(f.Instance)
	case "cgshop":
		return cgshop.Load(f.Instance)
	default:
		return nil, fmt.Errorf("%w: unknown instance type %q (want dimacs or cgshop)", graph.ErrMalformedInstance, f.Type)
	}
}

// WriteColoringSolution re-verifies partition and writes it via g's own
// WriteSolution hook (DIMACS text or CGSHOP JSON, depending on g's concrete
// type) when f.Solution is set; a no-op otherwise. A checker failure here
// means a core's bookkeeping went wrong, so nothing is written.
func WriteColoringSolution(g graph.Graph, f *Flags, partition [][]int) error {
	if f.Solution == "" {
		return nil
	}
	if err := checker.CheckColoring(g, partition); err != nil {
		return fmt.Errorf("cliutil: refusing to write solution: %w", err)
	}
	return g.WriteSolution(f.Solution, partition)
}

// SeedColoring builds the starting coloring for g: DSATUR greedy for a
// DIMACS instance, or the better of DSATUR and the CGSHOP-specific
// orientation-sorted greedy for a CGSHOP instance.
func SeedColoring(g graph.Graph) [][]int {
	dsatur := seed.DSATURGreedy(g)
	cg, ok := g.(*graph.CGSHOPGraph)
	if !ok {
		return dsatur
	}
	orientation := seed.OrientationSortedGreedy(cg)
	if len(orientation) < len(dsatur) {
		return orientation
	}
	return dsatur
}

// WriteCliqueSolution re-verifies members and writes them as a single-class
// partition through the same WriteSolution hook coloring uses.
func WriteCliqueSolution(g graph.Graph, f *Flags, members []int) error {
	if f.Solution == "" {
		return nil
	}
	if err := checker.CheckClique(g, members); err != nil {
		return fmt.Errorf("cliutil: refusing to write solution: %w", err)
	}
	return g.WriteSolution(f.Solution, [][]int{members})
}

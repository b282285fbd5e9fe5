package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/phroun/exprtree"
)

var (
	benchSize  int
	benchIters int
)

type benchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
}

func (r benchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		return fmt.Sprintf("%-30s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	return fmt.Sprintf("%-30s %12v", r.Name, r.Duration.Round(time.Microsecond))
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark tree generation, traversal, and evaluation",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchSize, "size", "n", 10000, "node count per tree")
	benchCmd.Flags().IntVarP(&benchIters, "iters", "i", 10, "iterations per operation")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	fmt.Println("exprtree benchmark")
	fmt.Printf("Tree size: %d nodes, %d iterations\n", benchSize, benchIters)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	gen := newGenerator(seed)

	var results []benchResult

	start := time.Now()
	trees := make([]*exprtree.Node, benchIters)
	for i := range trees {
		root, err := gen.Generate(benchSize)
		if err != nil {
			return err
		}
		trees[i] = root
	}
	results = append(results, benchResult{Name: "generate", Duration: time.Since(start), Ops: benchIters})

	start = time.Now()
	for _, root := range trees {
		if got := len(root.Flatten()); got != benchSize {
			return fmt.Errorf("flatten returned %d nodes, want %d", got, benchSize)
		}
	}
	results = append(results, benchResult{Name: "flatten", Duration: time.Since(start), Ops: benchIters})

	start = time.Now()
	for _, root := range trees {
		if _, err := root.Evaluate(); err != nil {
			return err
		}
	}
	results = append(results, benchResult{Name: "evaluate", Duration: time.Since(start), Ops: benchIters})

	start = time.Now()
	for _, root := range trees {
		if err := root.WriteExpr(io.Discard); err != nil {
			return err
		}
	}
	results = append(results, benchResult{Name: "print", Duration: time.Since(start), Ops: benchIters})

	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	seed    int64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "exprtree",
	Short: "Random arithmetic expression trees",
	Long: `exprtree generates random arithmetic expression trees, prints them in
prefix form, and evaluates them.

Trees are grown to an exact node count by repeatedly attaching fresh random
nodes to uniformly chosen existing nodes, then repaired so that every
operator node has at least one child.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "random seed (0 = time-seeded)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

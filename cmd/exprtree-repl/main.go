// exprtree-repl is an interactive shell for generating and inspecting random
// expression trees. It keeps one working tree at a time; commands take
// numeric arguments only, there is no expression parsing.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/phroun/exprtree"
)

const (
	historyFile = ".exprtree_history"
	prompt      = "exprtree> "
)

var helpText = `Commands:
  gen N      generate a new working tree with exactly N nodes
  print      print the working tree in prefix form
  eval       evaluate the working tree
  stats      show node/leaf/operator counts and depth
  repair     re-run the repair pass on the working tree
  seed N     reseed the generator (deterministic from here on)
  help       show this help
  quit       exit
`

// REPL holds the state of the interactive session.
type REPL struct {
	gen  *exprtree.Generator
	root *exprtree.Node
}

func main() {
	fmt.Println("exprtree REPL - random arithmetic expression trees")
	fmt.Println("Type 'help' for available commands, 'quit' to exit.")
	fmt.Println()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	repl := &REPL{gen: exprtree.NewGenerator(nil)}

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			// Ctrl+C or Ctrl+D.
			fmt.Println()
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if !repl.handleCommand(input) {
			break
		}
	}

	if f, err := os.Create(histPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		fmt.Print(helpText)

	case "quit", "exit":
		return false

	case "gen":
		r.cmdGen(args)

	case "print":
		if r.requireTree() {
			fmt.Println(r.root)
		}

	case "eval":
		r.cmdEval()

	case "stats":
		r.cmdStats()

	case "repair":
		if r.requireTree() {
			r.gen.Repair(r.root)
			fmt.Println("ok")
		}

	case "seed":
		r.cmdSeed(args)

	default:
		fmt.Printf("unknown command %q (try 'help')\n", cmd)
	}
	return true
}

func (r *REPL) requireTree() bool {
	if r.root == nil {
		fmt.Println("no working tree; use 'gen N' first")
		return false
	}
	return true
}

func (r *REPL) cmdGen(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: gen N")
		return
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("bad size %q\n", args[0])
		return
	}
	root, err := r.gen.Generate(size)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	r.root = root
	fmt.Println(r.root)
}

func (r *REPL) cmdEval() {
	if !r.requireTree() {
		return
	}
	value, err := r.root.Evaluate()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println(value)
}

func (r *REPL) cmdStats() {
	if !r.requireTree() {
		return
	}
	stats := r.root.Stats()
	fmt.Printf("nodes=%d leaves=%d operators=%d depth=%d\n",
		stats.Nodes, stats.Leaves, stats.Operators, stats.Depth)
}

func (r *REPL) cmdSeed(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: seed N")
		return
	}
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("bad seed %q\n", args[0])
		return
	}
	r.gen = exprtree.NewGenerator(rand.New(rand.NewSource(seed)))
	fmt.Println("ok")
}

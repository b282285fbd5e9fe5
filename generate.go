package exprtree

import (
	"math/rand"
	"time"
)

// Source supplies the randomness used during tree generation and repair.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64

	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// A Generator builds random expression trees from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src is replaced
// with a time-seeded rand.Rand; pass a seeded source for reproducible trees.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{src: src}
}

// NewNode produces a single unattached node: with probability 1/2 a value
// leaf holding a uniform float in [0, 1), otherwise a childless operator
// node chosen uniformly from the operator set.
func (g *Generator) NewNode() *Node {
	if g.src.Intn(2) == 0 {
		return NewValue(g.src.Float64())
	}
	return &Node{op: Operators[g.src.Intn(len(Operators))]}
}

// pick selects a node uniformly at random from the subtree rooted at root.
// Every node, including root itself, is equally likely.
func (g *Generator) pick(root *Node) *Node {
	nodes := root.Flatten()
	return nodes[g.src.Intn(len(nodes))]
}

// Generate builds a random expression tree with exactly targetSize nodes.
// Growth repeatedly picks a uniform random node from the current tree,
// promotes it to an operator if it currently holds a value, and attaches one
// fresh node as a new child. A final Repair pass demotes any operator left
// childless, so the returned tree always satisfies the leaf/operator
// invariant. Returns ErrInvalidSize if targetSize < 1.
func (g *Generator) Generate(targetSize int) (*Node, error) {
	if targetSize < 1 {
		return nil, ErrInvalidSize
	}
	root := g.NewNode()
	for i := 1; i < targetSize; i++ {
		parent := g.pick(root)
		if !parent.IsOperator() {
			// Only operator nodes accept children.
			if err := parent.SetOperator(Operators[g.src.Intn(len(Operators))]); err != nil {
				return nil, err
			}
		}
		if err := parent.AddChild(g.NewNode()); err != nil {
			return nil, err
		}
	}
	return g.Repair(root), nil
}

// Repair restores the invariant "operator node implies at least one child"
// everywhere in the subtree rooted at root: any childless operator node is
// demoted to a value leaf holding a fresh uniform float in [0, 1). Repair is
// idempotent; a second pass changes nothing.
func (g *Generator) Repair(root *Node) *Node {
	if root.IsLeaf() {
		if root.IsOperator() {
			root.op = ""
			root.value = g.src.Float64()
		}
		return root
	}
	for _, c := range root.children {
		g.Repair(c)
	}
	return root
}

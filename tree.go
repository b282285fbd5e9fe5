package exprtree

// TreeStats contains counts describing the shape of a tree.
type TreeStats struct {
	Nodes     int // total node count
	Leaves    int // nodes with no children
	Operators int // nodes holding an operator payload
	Depth     int // length of the longest root-to-leaf path, in nodes
}

// Size returns the number of nodes in the subtree rooted at n: the node
// itself plus the sizes of all children.
func (n *Node) Size() int {
	total := 1
	for _, c := range n.children {
		total += c.Size()
	}
	return total
}

// Depth returns the length of the longest root-to-leaf path, counted in
// nodes. A single node has depth 1.
func (n *Node) Depth() int {
	deepest := 0
	for _, c := range n.children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits the subtree rooted at n in pre-order: the node itself first,
// then each child's subtree in child order. Traversal stops early if fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Flatten returns every node in the subtree rooted at n in pre-order. The
// slice is rebuilt on each call, so repeated calls during growth reflect the
// tree's current shape.
func (n *Node) Flatten() []*Node {
	nodes := make([]*Node, 0, 8)
	n.Walk(func(m *Node) bool {
		nodes = append(nodes, m)
		return true
	})
	return nodes
}

// Stats walks the subtree rooted at n and returns its shape counts.
func (n *Node) Stats() TreeStats {
	stats := TreeStats{Depth: n.Depth()}
	n.Walk(func(m *Node) bool {
		stats.Nodes++
		if m.IsLeaf() {
			stats.Leaves++
		}
		if m.IsOperator() {
			stats.Operators++
		}
		return true
	})
	return stats
}

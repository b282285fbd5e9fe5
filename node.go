package exprtree

// Operator is a symbol from the fixed operator set.
type Operator string

const (
	// OpAdd sums all children.
	OpAdd Operator = "+"

	// OpSub subtracts the second and later children from the first,
	// left to right.
	OpSub Operator = "-"

	// OpMul multiplies all children.
	OpMul Operator = "*"
)

// Operators lists the full operator set in a fixed order.
var Operators = []Operator{OpAdd, OpSub, OpMul}

// Valid reports whether op is a member of the operator set.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul:
		return true
	}
	return false
}

// Node is a single element of an expression tree. Its payload is either a
// numeric value or an operator symbol, never both. A node with no children
// is a leaf and must hold a value once the tree has passed Repair; a node
// with children always holds an operator. Children are exclusively owned by
// their parent: a node is never shared between trees or re-parented.
type Node struct {
	// op is non-empty iff the payload is currently an operator.
	op       Operator
	value    float64
	children []*Node
}

// NewNode returns a childless node holding the value 0.
func NewNode() *Node {
	return &Node{}
}

// NewValue returns a childless node holding the value v.
func NewValue(v float64) *Node {
	return &Node{value: v}
}

// NewOperator returns a childless node holding the operator op. The node is
// transiently invalid until it is given children or demoted by Repair.
// Returns ErrUnknownOperator if op is outside the operator set.
func NewOperator(op Operator) (*Node, error) {
	if !op.Valid() {
		return nil, ErrUnknownOperator
	}
	return &Node{op: op}, nil
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsOperator reports whether the payload is currently an operator symbol,
// independent of child count.
func (n *Node) IsOperator() bool {
	return n.op != ""
}

// Value returns the numeric payload. It is meaningful only when IsOperator
// reports false.
func (n *Node) Value() float64 {
	return n.value
}

// Operator returns the operator payload, or the empty string for a value
// node.
func (n *Node) Operator() Operator {
	return n.op
}

// Children returns a copy of the child slice. Mutating the returned slice
// does not affect the node; children are attached only through AddChild.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// SetValue overwrites the payload with the value v. Returns ErrHasChildren
// if the node currently has children: a value node can never have children,
// so the demotion is only legal on a leaf.
func (n *Node) SetValue(v float64) error {
	if len(n.children) > 0 {
		return ErrHasChildren
	}
	n.op = ""
	n.value = v
	return nil
}

// SetOperator overwrites the payload with the operator op. Child count is
// unconstrained: a childless node may be promoted first and given children
// afterward. Returns ErrUnknownOperator if op is outside the operator set.
func (n *Node) SetOperator(op Operator) error {
	if !op.Valid() {
		return ErrUnknownOperator
	}
	n.op = op
	n.value = 0
	return nil
}

// AddChild appends child to the node's child sequence, transferring
// ownership of child to n. Returns ErrLeafParent if the node's payload is
// currently a value.
func (n *Node) AddChild(child *Node) error {
	if !n.IsOperator() {
		return ErrLeafParent
	}
	n.children = append(n.children, child)
	return nil
}

// Clone returns a deep copy of the subtree rooted at n. Nodes are never
// shared between trees, so cloning is the only way to duplicate one.
func (n *Node) Clone() *Node {
	out := &Node{op: n.op, value: n.value}
	if len(n.children) > 0 {
		out.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			out.children[i] = c.Clone()
		}
	}
	return out
}

// Equal reports whether the subtrees rooted at n and other have identical
// shape and payloads.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.op != other.op || n.value != other.value || len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

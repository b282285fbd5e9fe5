package exprtree

// Evaluate folds the subtree rooted at n into a single numeric result. A
// value leaf yields its payload. An operator node evaluates its children in
// child order and folds the results left to right, so subtraction is
// order-sensitive: (- a b c) means (a-b)-c. Returns ErrChildlessOperator for
// an operator node with no children; such nodes cannot appear in a tree that
// has passed Repair.
func (n *Node) Evaluate() (float64, error) {
	if n.IsLeaf() {
		if n.IsOperator() {
			return 0, ErrChildlessOperator
		}
		return n.value, nil
	}
	acc, err := n.children[0].Evaluate()
	if err != nil {
		return 0, err
	}
	for _, c := range n.children[1:] {
		v, err := c.Evaluate()
		if err != nil {
			return 0, err
		}
		acc, err = apply(n.op, acc, v)
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}

func apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	}
	return 0, ErrUnknownOperator
}

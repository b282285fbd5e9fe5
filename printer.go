package exprtree

import (
	"io"
	"strconv"
	"strings"
)

// WriteExpr writes the subtree rooted at n to w in prefix form: a value leaf
// renders as its numeric literal, an operator node as the operator symbol
// followed by its rendered children, space-separated and parenthesized, e.g.
// "(+ 1 2)". The output is a diagnostic surface, not a stable wire format.
func (n *Node) WriteExpr(w io.Writer) error {
	if n.IsLeaf() && !n.IsOperator() {
		_, err := io.WriteString(w, formatValue(n.value))
		return err
	}
	if _, err := io.WriteString(w, "("+string(n.op)); err != nil {
		return err
	}
	for _, c := range n.children {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := c.WriteExpr(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

// String returns the prefix-form rendering of the subtree rooted at n.
func (n *Node) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	n.WriteExpr(&sb)
	return sb.String()
}

// formatValue renders a numeric payload in its shortest exact form, so 3.5
// prints as "3.5" and 2 as "2".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Package exprtree models arithmetic expressions as trees: nodes hold either
// a numeric value (leaves) or an operator symbol (internal nodes), and the
// package provides random generation, repair, evaluation, and printing of
// whole trees.
package exprtree

import "errors"

// Structural errors
var (
	// ErrHasChildren indicates an attempt to set a value payload on a node
	// that currently has children.
	ErrHasChildren = errors.New("cannot set value on node with children")

	// ErrLeafParent indicates an attempt to add a child to a node whose
	// payload is currently a value.
	ErrLeafParent = errors.New("cannot add child to value node")

	// ErrChildlessOperator indicates that an operator node with no children
	// was encountered during evaluation. Trees that have passed Repair never
	// contain such nodes.
	ErrChildlessOperator = errors.New("operator node has no children")
)

// Operator errors
var (
	// ErrUnknownOperator indicates an operator symbol outside the fixed set.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Generation errors
var (
	// ErrInvalidSize indicates a target tree size below 1.
	ErrInvalidSize = errors.New("target size must be at least 1")
)

package exprtree

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		tree func(t *testing.T) *Node
		want float64
	}{
		{
			name: "value leaf",
			tree: func(t *testing.T) *Node { return NewValue(3.5) },
			want: 3.5,
		},
		{
			name: "ternary add",
			tree: func(t *testing.T) *Node {
				return opNode(t, OpAdd, NewValue(1), NewValue(5), NewValue(10))
			},
			want: 16,
		},
		{
			name: "ternary multiply",
			tree: func(t *testing.T) *Node {
				return opNode(t, OpMul, NewValue(2), NewValue(3), NewValue(4))
			},
			want: 24,
		},
		{
			name: "subtraction folds left",
			tree: func(t *testing.T) *Node {
				// (- 10 3 2) = (10-3)-2, not 10-(3-2).
				return opNode(t, OpSub, NewValue(10), NewValue(3), NewValue(2))
			},
			want: 5,
		},
		{
			name: "unary operator",
			tree: func(t *testing.T) *Node {
				return opNode(t, OpSub, NewValue(4))
			},
			want: 4,
		},
		{
			name: "nested",
			tree: func(t *testing.T) *Node {
				// (- (+ 1 5) (* 2 3)) = 6 - 6 = 0.
				return opNode(t, OpSub,
					opNode(t, OpAdd, NewValue(1), NewValue(5)),
					opNode(t, OpMul, NewValue(2), NewValue(3)),
				)
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.tree(t)
			got, err := root.Evaluate()
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}

			// Evaluation is deterministic: a second walk over the same
			// payloads yields the same result.
			again, err := root.Evaluate()
			if err != nil {
				t.Fatalf("second Evaluate: %v", err)
			}
			if again != got {
				t.Errorf("second Evaluate() = %v, want %v", again, got)
			}
		})
	}
}

func TestEvaluateSubtractionOrderSensitive(t *testing.T) {
	forward := opNode(t, OpSub, NewValue(10), NewValue(3), NewValue(2))
	reversed := opNode(t, OpSub, NewValue(2), NewValue(3), NewValue(10))

	a, err := forward.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	b, err := reversed.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if a == b {
		t.Errorf("reordering subtraction children should change the result, got %v both ways", a)
	}
	if a != 5 {
		t.Errorf("forward fold = %v, want 5", a)
	}
	if b != -11 {
		t.Errorf("reversed fold = %v, want -11", b)
	}
}

func TestEvaluateChildlessOperator(t *testing.T) {
	t.Run("at root", func(t *testing.T) {
		root, err := NewOperator(OpAdd)
		if err != nil {
			t.Fatalf("NewOperator: %v", err)
		}
		_, err = root.Evaluate()
		if !errors.Is(err, ErrChildlessOperator) {
			t.Errorf("Evaluate error = %v, want %v", err, ErrChildlessOperator)
		}
	})

	t.Run("nested", func(t *testing.T) {
		dangling, err := NewOperator(OpMul)
		if err != nil {
			t.Fatalf("NewOperator: %v", err)
		}
		root := opNode(t, OpAdd, NewValue(1), dangling)
		_, err = root.Evaluate()
		if !errors.Is(err, ErrChildlessOperator) {
			t.Errorf("Evaluate error = %v, want %v", err, ErrChildlessOperator)
		}
	})
}

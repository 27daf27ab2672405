package intcoll

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a tuple of two values. Bimaps use it to hand out key-value associations.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair ⟨x, y⟩.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("⟨%v, %v⟩", p.Left, p.Right)
}

package tensorcanon

// Term is the outcome of normalizing a tensor: either the algebraic zero
// or a canonical tensor value carrying a sign. Zero is an expected
// algebraic result (Pauli-violating index groups, self-paired
// antisymmetric permutations), not an error, and callers must branch on
// IsZero before using the value.
type Term[T any] struct {
	value T
	sign  int
	zero  bool
}

func termOf[T any](v T, sign int) Term[T] {
	return Term[T]{value: v, sign: sign}
}

func zeroTerm[T any]() Term[T] {
	return Term[T]{zero: true}
}

// IsZero reports whether the term is the algebraic zero.
func (t Term[T]) IsZero() bool { return t.zero }

// Sign returns +1 or -1 for a nonzero term and 0 for the zero term.
func (t Term[T]) Sign() int { return t.sign }

// Value returns the canonical tensor. It is only meaningful when IsZero
// is false; for the zero term it returns the type's zero value.
func (t Term[T]) Value() T { return t.value }

package tensorcanon

import (
	"fmt"
	"slices"
)

// Perm names two index positions whose exchange is a symmetry of the
// tensor. Positions are zero-based into the index sequence.
type Perm [2]int

// SingleSymmetryTensor is a tensor that is symmetric (factor +1) or
// antisymmetric (factor -1) under each of a set of independent
// position-pair exchanges, and has no further symmetry. The pairs must
// be pairwise disjoint, so every combination of applying or skipping
// them is reachable and the exchanges never interact.
//
// The stored index sequence is the canonical representative of that
// orbit: construction decides once, for the whole pair set, whether to
// flip to the exchanged ordering.
type SingleSymmetryTensor struct {
	symbol  string
	indices []Label
	perms   []Perm
	factor  int
}

// NewSingleSymmetryTensor builds the canonical form of a tensor with a
// set of independent pair symmetries. The Term is zero when an
// antisymmetric pair holds the same index twice.
func NewSingleSymmetryTensor(symbol string, indices []Label, perms []Perm, factor int) (Term[*SingleSymmetryTensor], error) {
	seen := make(map[int]bool, 2*len(perms))
	for _, p := range perms {
		for _, pos := range []int{p[0], p[1]} {
			if pos < 0 || pos >= len(indices) {
				return zeroTerm[*SingleSymmetryTensor](), fmt.Errorf("%w: permutation position %d outside index sequence of length %d", ErrInvalidInput, pos, len(indices))
			}
			if seen[pos] {
				return zeroTerm[*SingleSymmetryTensor](), &ErrIntersectingPerms{Perms: slices.Clone(perms)}
			}
			seen[pos] = true
		}
	}
	if factor != 1 && factor != -1 {
		return zeroTerm[*SingleSymmetryTensor](), &ErrInvalidFactor{Got: factor}
	}

	// Each pair is judged on its own: exchanging it is marked "apply"
	// when that brings the smaller key forward. Whether the marked
	// exchanges happen is then decided once for the whole set, so the
	// representation is flipped wholesale or not at all.
	marked := make([]bool, len(perms))
	var minApply, minSkip *sortKey
	for n, perm := range perms {
		i, j := perm[0], perm[1]
		if j < i {
			i, j = j, i
		}
		p, q := indices[i], indices[j]
		if factor == -1 && p.Same(q) {
			return zeroTerm[*SingleSymmetryTensor](), nil
		}
		pk, qk := keyOf(p), keyOf(q)
		if qk.less(pk) {
			marked[n] = true
			if minApply == nil || qk.less(*minApply) {
				minApply = &qk
			}
		} else {
			if minSkip == nil || pk.less(*minSkip) {
				minSkip = &pk
			}
		}
	}

	applied := false
	if decideBatch(countMarked(marked), len(perms), minApply, minSkip) {
		indices = slices.Clone(indices)
		for n, perm := range perms {
			if marked[n] {
				indices[perm[0]], indices[perm[1]] = indices[perm[1]], indices[perm[0]]
			}
		}
		applied = true
	}

	t := &SingleSymmetryTensor{
		symbol:  symbol,
		indices: slices.Clone(indices),
		perms:   slices.Clone(perms),
		factor:  factor,
	}
	if applied && factor == -1 {
		return termOf(t, -1), nil
	}
	return termOf(t, +1), nil
}

// decideBatch is the batch-apply rule: flip to the exchanged
// representation when every pair wants it, or when at least half of the
// pairs want it and the smallest key on the "apply" side beats the
// smallest key on the "skip" side. Anything else keeps the supplied
// ordering, so both orderings of any pair converge on one
// representative.
func decideBatch(marked, total int, minApply, minSkip *sortKey) bool {
	if total == 0 || marked == 0 {
		return false
	}
	if marked == total {
		return true
	}
	return 2*marked >= total && minApply.less(*minSkip)
}

func countMarked(marked []bool) int {
	n := 0
	for _, m := range marked {
		if m {
			n++
		}
	}
	return n
}

// Symbol returns the tensor symbol.
func (t *SingleSymmetryTensor) Symbol() string { return t.symbol }

// Indices returns a copy of the canonical index sequence.
func (t *SingleSymmetryTensor) Indices() []Label { return slices.Clone(t.indices) }

// Perms returns a copy of the symmetry pair set.
func (t *SingleSymmetryTensor) Perms() []Perm { return slices.Clone(t.perms) }

// Factor returns +1 for symmetric or -1 for antisymmetric pairs.
func (t *SingleSymmetryTensor) Factor() int { return t.factor }

// Equal reports whether two canonical tensors are the same value.
func (t *SingleSymmetryTensor) Equal(o *SingleSymmetryTensor) bool {
	return t.symbol == o.symbol && t.factor == o.factor &&
		slices.Equal(t.perms, o.perms) && sameLabels(t.indices, o.indices)
}

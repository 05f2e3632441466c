package tensorcanon

import (
	"errors"
	"slices"

	"github.com/frieschneider/tensorcanon/internal/permsort"
)

// AntiSymmetricTensor is a tensor that is fully antisymmetric under
// exchange of two upper or two lower indices, e.g. ERIs in the physicist
// notation or cluster amplitudes. Both index groups are held in
// canonical order; construction tracks the anticommutation sign of the
// reordering and returns it on the Term.
//
// A nonzero bra/ket symmetry states that exchanging the complete upper
// and lower groups leaves the tensor unchanged (+1) or flips its
// sign (-1).
type AntiSymmetricTensor struct {
	symbol    string
	upper     []Label
	lower     []Label
	braKetSym int
}

// NewAntiSymmetricTensor builds the canonical form of an antisymmetric
// tensor. The returned Term is zero when an index group violates the
// Pauli principle, and negative when the canonical reordering needs an
// odd number of transpositions.
func NewAntiSymmetricTensor(symbol string, upper, lower []Label, braKetSym int) (Term[*AntiSymmetricTensor], error) {
	sortedUpper, swapsUpper, err := permsort.Anticommute(upper, keyOf, sortKey.less)
	if err != nil {
		if errors.Is(err, permsort.ErrPauliViolation) {
			return zeroTerm[*AntiSymmetricTensor](), nil
		}
		return zeroTerm[*AntiSymmetricTensor](), err
	}
	sortedLower, swapsLower, err := permsort.Anticommute(lower, keyOf, sortKey.less)
	if err != nil {
		if errors.Is(err, permsort.ErrPauliViolation) {
			return zeroTerm[*AntiSymmetricTensor](), nil
		}
		return zeroTerm[*AntiSymmetricTensor](), err
	}
	swaps := swapsUpper + swapsLower

	// The bra/ket rules compare spaces and names, which only genuine
	// indices have. During simultaneous substitution a group may hold
	// placeholder labels; those tensors keep their symmetry flag but
	// skip the group reordering until resubstituted.
	if braKetSym != 0 && allIndices(sortedUpper) && allIndices(sortedLower) {
		if braKetSym != 1 && braKetSym != -1 {
			return zeroTerm[*AntiSymmetricTensor](), &ErrInvalidBraKetSym{Got: braKetSym}
		}
		if len(sortedUpper) != len(sortedLower) {
			return zeroTerm[*AntiSymmetricTensor](), &ErrUnequalGroups{Upper: len(sortedUpper), Lower: len(sortedLower)}
		}
		if swapGroups(groupKey(sortedUpper), groupKey(sortedLower)) {
			sortedUpper, sortedLower = sortedLower, sortedUpper
			if braKetSym == -1 {
				swaps++
			}
		}
	}

	t := &AntiSymmetricTensor{
		symbol:    symbol,
		upper:     sortedUpper,
		lower:     sortedLower,
		braKetSym: braKetSym,
	}
	if swaps%2 == 1 {
		return termOf(t, -1), nil
	}
	return termOf(t, +1), nil
}

// branchKey captures what the bra/ket swap rule compares per group: the
// concatenated space characters and, for the equal-space diagonal
// blocks, the per-index (numeric suffix, letter) sequence.
type branchKey struct {
	space string
	names []nameKey
}

func groupKey(ls []Label) branchKey {
	k := branchKey{names: make([]nameKey, len(ls))}
	b := make([]byte, len(ls))
	for i, l := range ls {
		ix, _ := l.Index()
		b[i] = ix.Space().Char()
		k.names[i] = nameKeyOf(l)
	}
	k.space = string(b)
	return k
}

// swapGroups decides whether upper and lower must trade places: the
// group with the lexicographically smaller space string becomes the
// upper group, with the name sequences breaking ties between
// equal-space blocks.
func swapGroups(upper, lower branchKey) bool {
	if lower.space != upper.space {
		return lower.space < upper.space
	}
	return lessNameKeys(lower.names, upper.names)
}

func allIndices(ls []Label) bool {
	for _, l := range ls {
		if !l.IsIndex() {
			return false
		}
	}
	return true
}

// Symbol returns the tensor symbol.
func (t *AntiSymmetricTensor) Symbol() string { return t.symbol }

// Upper returns a copy of the canonical upper index group.
func (t *AntiSymmetricTensor) Upper() []Label { return slices.Clone(t.upper) }

// Lower returns a copy of the canonical lower index group.
func (t *AntiSymmetricTensor) Lower() []Label { return slices.Clone(t.lower) }

// BraKetSym returns the bra/ket symmetry flag: 0, +1 or -1.
func (t *AntiSymmetricTensor) BraKetSym() int { return t.braKetSym }

// AddBraKetSym returns a tensor equal to t but carrying the given
// bra/ket symmetry. Passing 0 returns t unchanged. Once a nonzero
// symmetry is set it cannot be replaced: normalization discarded the
// original index order, so rebuilding under a different symmetry would
// be unsound, and ErrBraKetSymSet is returned instead.
func (t *AntiSymmetricTensor) AddBraKetSym(braKetSym int) (Term[*AntiSymmetricTensor], error) {
	if braKetSym == 0 {
		return termOf(t, +1), nil
	}
	if t.braKetSym != 0 {
		return zeroTerm[*AntiSymmetricTensor](), ErrBraKetSymSet
	}
	return NewAntiSymmetricTensor(t.symbol, t.upper, t.lower, braKetSym)
}

// Equal reports whether two canonical tensors are the same value:
// same symbol, same symmetry flag and identical index groups.
func (t *AntiSymmetricTensor) Equal(o *AntiSymmetricTensor) bool {
	if t.symbol != o.symbol || t.braKetSym != o.braKetSym {
		return false
	}
	return sameLabels(t.upper, o.upper) && sameLabels(t.lower, o.lower)
}

func sameLabels(a, b []Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

package tensorcanon

import (
	"fmt"

	"github.com/frieschneider/tensorcanon/index"
)

// DeltaRange restricts both delta indices to the closed interval
// [Inf, Sup]. Bounds are labels so hosts can restrict against either
// literal orbital numbers or symbolic boundaries.
type DeltaRange struct {
	Inf Label
	Sup Label
}

// Delta is a generalized Kronecker delta over two index labels, kept in
// canonical order (the oracle-minimal label first). Values of this type
// only come out of EvaluateDelta, which guarantees the canonical order
// and that none of the structural-zero rules applied.
type Delta struct {
	first  Label
	second Label
	rng    *DeltaRange
}

// DeltaResultKind tags the outcome of a delta evaluation.
type DeltaResultKind uint8

const (
	// DeltaZero means the delta vanishes: disjoint ranges, provably
	// unequal indices, incompatible spaces or incompatible spins.
	DeltaZero DeltaResultKind = iota
	// DeltaOne means the delta collapses to the multiplicative identity.
	DeltaOne
	// DeltaSymbolic means no rule fired; the delta survives in
	// canonical form.
	DeltaSymbolic
)

// DeltaResult is the sum of the three evaluation outcomes. Delta is
// non-nil exactly when Kind is DeltaSymbolic.
type DeltaResult struct {
	Kind  DeltaResultKind
	Delta *Delta
}

// EvaluateDelta simplifies delta(i, j), optionally restricted to rng.
// The rules apply in order, first match wins:
//
//  1. an index provably outside the range makes the delta zero
//  2. provably equal indices give one, provably unequal give zero
//  3. two non-general spaces that differ give zero
//  4. two set spins that differ give zero
//  5. otherwise the delta survives, reordered so the oracle-minimal
//     label comes first (the delta is symmetric in its arguments)
func EvaluateDelta(i, j Label, rng *DeltaRange) DeltaResult {
	if rng != nil {
		if provablyLess(i, rng.Inf) == yes || provablyLess(j, rng.Inf) == yes ||
			provablyLess(rng.Sup, i) == yes || provablyLess(rng.Sup, j) == yes {
			return DeltaResult{Kind: DeltaZero}
		}
	}

	switch provablyEqual(i, j) {
	case yes:
		return DeltaResult{Kind: DeltaOne}
	case no:
		return DeltaResult{Kind: DeltaZero}
	}

	if ii, ok := i.Index(); ok {
		if jj, ok := j.Index(); ok {
			si, sj := ii.Space(), jj.Space()
			if si != index.General && sj != index.General && si != sj {
				return DeltaResult{Kind: DeltaZero}
			}
			if ii.Spin() != index.SpinNone && jj.Spin() != index.SpinNone && ii.Spin() != jj.Spin() {
				return DeltaResult{Kind: DeltaZero}
			}
		}
	}

	if keyOf(j).less(keyOf(i)) {
		i, j = j, i
	}
	return DeltaResult{Kind: DeltaSymbolic, Delta: &Delta{first: i, second: j, rng: rng}}
}

// First returns the oracle-minimal label of the delta.
func (d *Delta) First() Label { return d.first }

// Second returns the other label.
func (d *Delta) Second() Label { return d.second }

// Range returns the range restriction, or nil.
func (d *Delta) Range() *DeltaRange { return d.rng }

// PreferredIndex returns which of the two labels (0 for First, 1 for
// Second) downstream substitution should keep when collapsing the
// delta: within one space either works and the first is kept, while a
// general index is always eliminated in favor of the specific one.
//
// Mixed spins have no defined preference and return an error. Mixed
// non-general spaces cannot occur on a surviving delta; evaluation
// already maps those to zero.
func (d *Delta) PreferredIndex() (int, error) {
	fi, ok := d.first.Index()
	if !ok {
		return 0, fmt.Errorf("%w: preferred index of delta over non-index label %s", ErrNotImplemented, d.first)
	}
	se, ok := d.second.Index()
	if !ok {
		return 0, fmt.Errorf("%w: preferred index of delta over non-index label %s", ErrNotImplemented, d.second)
	}
	if fi.Spin() != se.Spin() {
		return 0, &ErrSpinMismatch{Delta: d}
	}
	switch {
	case fi.Space() == se.Space():
		return 0, nil
	case se.Space() == index.General:
		return 0, nil
	default: // first is general, second is specific
		return 1, nil
	}
}

// Equal reports whether two canonical deltas are the same value,
// including their range restriction.
func (d *Delta) Equal(o *Delta) bool {
	if !d.first.Same(o.first) || !d.second.Same(o.second) {
		return false
	}
	if (d.rng == nil) != (o.rng == nil) {
		return false
	}
	if d.rng != nil && (!d.rng.Inf.Same(o.rng.Inf) || !d.rng.Sup.Same(o.rng.Sup)) {
		return false
	}
	return true
}

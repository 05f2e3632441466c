package tensorcanon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the category for malformed construction
	// arguments. All input errors unwrap to it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented is the category for configurations the engine
	// recognizes but does not support. All unsupported-configuration
	// errors unwrap to it.
	ErrNotImplemented = errors.New("not implemented")

	// ErrBraKetSymSet is returned by AddBraKetSym when the tensor already
	// carries a nonzero bra/ket symmetry. The original index order is not
	// recoverable after normalization, so the symmetry cannot be changed.
	ErrBraKetSymSet = fmt.Errorf("%w: bra/ket symmetry already set", ErrInvalidInput)
)

// ErrInvalidBraKetSym indicates a bra/ket symmetry outside {0, +1, -1}.
type ErrInvalidBraKetSym struct {
	Got int
}

func (e *ErrInvalidBraKetSym) Error() string {
	return fmt.Sprintf("invalid bra/ket symmetry %d: valid are 0, 1 or -1", e.Got)
}

func (e *ErrInvalidBraKetSym) Unwrap() error { return ErrInvalidInput }

// ErrInvalidFactor indicates a symmetry factor outside {+1, -1}.
type ErrInvalidFactor struct {
	Got int
}

func (e *ErrInvalidFactor) Error() string {
	return fmt.Sprintf("invalid symmetry factor %d: valid are 1 and -1", e.Got)
}

func (e *ErrInvalidFactor) Unwrap() error { return ErrInvalidInput }

// ErrUnequalGroups indicates bra/ket symmetry requested for a tensor
// whose upper and lower groups differ in length.
type ErrUnequalGroups struct {
	Upper, Lower int
}

func (e *ErrUnequalGroups) Error() string {
	return fmt.Sprintf("bra/ket symmetry needs equal group lengths, got %d upper and %d lower", e.Upper, e.Lower)
}

func (e *ErrUnequalGroups) Unwrap() error { return ErrNotImplemented }

// ErrIntersectingPerms indicates a permutation set in which one index
// position appears in more than one pair.
type ErrIntersectingPerms struct {
	Perms []Perm
}

func (e *ErrIntersectingPerms) Error() string {
	return fmt.Sprintf("intersecting permutations %v: each position may appear in at most one pair", e.Perms)
}

func (e *ErrIntersectingPerms) Unwrap() error { return ErrNotImplemented }

// ErrSpinMismatch indicates a preferred-index query on a delta whose two
// indices carry different spin; no preference is defined there.
type ErrSpinMismatch struct {
	Delta *Delta
}

func (e *ErrSpinMismatch) Error() string {
	return fmt.Sprintf("preferred index undefined for mixed-spin delta %s", e.Delta)
}

func (e *ErrSpinMismatch) Unwrap() error { return ErrNotImplemented }

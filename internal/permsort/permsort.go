// Package permsort implements the anticommuting permutation sort used to
// bring fermionic index groups into canonical order.
//
// Reordering anticommuting objects picks up one sign per transposition,
// so the sort must report how many neighbor exchanges it performed. Two
// identical objects in one antisymmetric group force the whole product to
// vanish (Pauli principle); the sort signals this as a distinguished
// error so callers can map it to an algebraic zero.
package permsort

import (
	"errors"
	"slices"
)

// ErrPauliViolation is returned when two identical elements meet in an
// antisymmetric group. Callers treat this as "the tensor is zero", not
// as a failure.
var ErrPauliViolation = errors.New("permsort: identical indices in antisymmetric group")

// Anticommute sorts xs by the given key using neighbor transpositions and
// returns the sorted copy together with the number of transpositions
// performed. less must be a strict total order on keys; two elements
// whose keys are mutually not-less are considered identical and trigger
// ErrPauliViolation.
//
// The input slice is never modified.
func Anticommute[T any, K any](xs []T, key func(T) K, less func(a, b K) bool) ([]T, int, error) {
	out := slices.Clone(xs)
	keys := make([]K, len(out))
	for i, x := range out {
		keys[i] = key(x)
	}
	swaps := 0
	for {
		swapped := false
		for i := 0; i+1 < len(out); i++ {
			a, b := keys[i], keys[i+1]
			if !less(a, b) && !less(b, a) {
				return nil, 0, ErrPauliViolation
			}
			if less(b, a) {
				out[i], out[i+1] = out[i+1], out[i]
				keys[i], keys[i+1] = keys[i+1], keys[i]
				swaps++
				swapped = true
			}
		}
		if !swapped {
			return out, swaps, nil
		}
	}
}

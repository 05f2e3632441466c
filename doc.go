// Package tensorcanon brings symmetry-constrained tensor expressions
// from many-body derivations into one unique, sign-correct canonical
// form.
//
// Tensors carry orbital indices from disjoint spaces (occupied, virtual,
// general) with optional spin, and obey algebraic symmetries: full
// antisymmetry within an index group, bra/ket exchange symmetry,
// independent pair permutations, and the Kronecker-delta identity.
// Many representations of one tensor are algebraically equal; downstream
// simplification needs them all to normalize to the same value.
//
// # Quick Start
//
//	i := index.Must("i", index.Occupied)
//	j := index.Must("j", index.Occupied)
//	a := index.Must("a", index.Virtual)
//	b := index.Must("b", index.Virtual)
//
//	// t^{ba}_{ij} normalizes to -t^{ab}_{ij}
//	term, _ := tensorcanon.NewAntiSymmetricTensor("t",
//	    tensorcanon.Idxs(b, a), tensorcanon.Idxs(i, j), 0)
//	fmt.Println(term.Sign(), term.Value()) // -1 t(a b,i j)
//
//	// delta between occupied and virtual vanishes structurally
//	res := tensorcanon.EvaluateDelta(tensorcanon.Idx(i), tensorcanon.Idx(a), nil)
//	fmt.Println(res.Kind == tensorcanon.DeltaZero) // true
//
// # Result Model
//
// Construction is the single entry point that normalizes. It returns a
// Term: either the algebraic zero (Pauli-violating duplicate indices,
// self-paired antisymmetric exchanges) or a canonical tensor with a
// sign of +1 or -1. Malformed inputs and unsupported configurations
// come back as errors instead, unwrapping to ErrInvalidInput or
// ErrNotImplemented. Zero is never an error and errors never stand in
// for zero.
//
// All values are immutable after construction and safe to share across
// goroutines. For large derivations, Canonicalizer normalizes batches
// of tensor specs concurrently.
package tensorcanon

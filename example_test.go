package tensorcanon_test

import (
	"fmt"

	"github.com/frieschneider/tensorcanon"
	"github.com/frieschneider/tensorcanon/index"
)

// Example_antiSymmetric demonstrates canonical sorting with sign tracking.
func Example_antiSymmetric() {
	i := index.Must("i", index.Occupied)
	j := index.Must("j", index.Occupied)
	a := index.Must("a", index.Virtual)
	b := index.Must("b", index.Virtual)

	// t^{ba}_{ij} is -t^{ab}_{ij}
	term, err := tensorcanon.NewAntiSymmetricTensor("t",
		tensorcanon.Idxs(b, a), tensorcanon.Idxs(i, j), 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(term.Sign(), term.Value())
	// Output: -1 t(a b,i j)
}

// Example_pauli demonstrates that a duplicated antisymmetric index makes
// the tensor vanish.
func Example_pauli() {
	i := index.Must("i", index.Occupied)
	a := index.Must("a", index.Virtual)
	b := index.Must("b", index.Virtual)

	term, err := tensorcanon.NewAntiSymmetricTensor("t",
		[]tensorcanon.Label{tensorcanon.Idx(i), tensorcanon.Idx(i)},
		tensorcanon.Idxs(a, b), 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(term.IsZero())
	// Output: true
}

// Example_delta demonstrates structural delta evaluation.
func Example_delta() {
	i := index.Must("i", index.Occupied)
	a := index.Must("a", index.Virtual)
	p := index.Must("p", index.General)

	occVirt := tensorcanon.EvaluateDelta(tensorcanon.Idx(i), tensorcanon.Idx(a), nil)
	fmt.Println(occVirt.Kind == tensorcanon.DeltaZero)

	wildcard := tensorcanon.EvaluateDelta(tensorcanon.Idx(i), tensorcanon.Idx(p), nil)
	fmt.Println(wildcard.Delta)
	// Output:
	// true
	// delta(p,i)
}

// Example_singleSymmetry demonstrates the canonical representative of a
// pair-symmetric tensor.
func Example_singleSymmetry() {
	p := index.Must("p", index.General)
	q := index.Must("q", index.General)
	r := index.Must("r", index.General)
	s := index.Must("s", index.General)

	term, err := tensorcanon.NewSingleSymmetryTensor("u",
		tensorcanon.Idxs(q, p, r, s),
		[]tensorcanon.Perm{{0, 1}, {2, 3}}, +1)
	if err != nil {
		panic(err)
	}
	fmt.Println(term.Sign(), term.Value())
	// Output: 1 u(p q r s)
}

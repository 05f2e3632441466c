package tensorcanon

import "slices"

// NonSymmetricTensor represents a tensor without any index symmetry.
// Indices keep the order they were supplied in; the value is identified
// by (symbol, indices) alone.
type NonSymmetricTensor struct {
	symbol  string
	indices []Label
}

// NewNonSymmetricTensor wraps a symbol and an index sequence. There is
// nothing to normalize, so construction cannot fail or vanish.
func NewNonSymmetricTensor(symbol string, indices []Label) *NonSymmetricTensor {
	return &NonSymmetricTensor{symbol: symbol, indices: slices.Clone(indices)}
}

// Symbol returns the tensor symbol.
func (t *NonSymmetricTensor) Symbol() string { return t.symbol }

// Indices returns a copy of the index sequence.
func (t *NonSymmetricTensor) Indices() []Label { return slices.Clone(t.indices) }

// Equal reports whether two tensors are the same value.
func (t *NonSymmetricTensor) Equal(o *NonSymmetricTensor) bool {
	return t.symbol == o.symbol && sameLabels(t.indices, o.indices)
}

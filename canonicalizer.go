package tensorcanon

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AntiSymmetricSpec is one antisymmetric tensor to normalize in a batch.
type AntiSymmetricSpec struct {
	Symbol    string
	Upper     []Label
	Lower     []Label
	BraKetSym int
}

// SingleSymmetrySpec is one pair-symmetric tensor to normalize in a batch.
type SingleSymmetrySpec struct {
	Symbol  string
	Indices []Label
	Perms   []Perm
	Factor  int
}

// Canonicalizer normalizes batches of tensors concurrently. Every
// normalization is an independent pure function over immutable inputs,
// so batches need no coordination beyond the concurrency bound.
//
// A Canonicalizer is safe for concurrent use.
type Canonicalizer struct {
	opts options
}

// NewCanonicalizer creates a Canonicalizer with the given options.
func NewCanonicalizer(optFns ...Option) *Canonicalizer {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Canonicalizer{opts: opts}
}

// AntiSymmetric normalizes a batch of antisymmetric tensor specs. The
// result slice is index-aligned with the specs. The first construction
// error aborts the batch; algebraic zeros are ordinary results and do
// not abort anything.
func (c *Canonicalizer) AntiSymmetric(ctx context.Context, specs []AntiSymmetricSpec) ([]Term[*AntiSymmetricTensor], error) {
	results := make([]Term[*AntiSymmetricTensor], len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)
	for n, spec := range specs {
		n, spec := n, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			term, err := NewAntiSymmetricTensor(spec.Symbol, spec.Upper, spec.Lower, spec.BraKetSym)
			c.opts.logger.LogNormalize(ctx, spec.Symbol, term.Sign(), term.IsZero(), err)
			if err != nil {
				return err
			}
			results[n] = term
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.opts.logger.LogBatch(ctx, len(specs), 0, err)
		return nil, err
	}
	c.opts.logger.LogBatch(ctx, len(specs), countZero(results), nil)
	return results, nil
}

// SingleSymmetry normalizes a batch of pair-symmetric tensor specs. The
// result slice is index-aligned with the specs.
func (c *Canonicalizer) SingleSymmetry(ctx context.Context, specs []SingleSymmetrySpec) ([]Term[*SingleSymmetryTensor], error) {
	results := make([]Term[*SingleSymmetryTensor], len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)
	for n, spec := range specs {
		n, spec := n, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			term, err := NewSingleSymmetryTensor(spec.Symbol, spec.Indices, spec.Perms, spec.Factor)
			c.opts.logger.LogNormalize(ctx, spec.Symbol, term.Sign(), term.IsZero(), err)
			if err != nil {
				return err
			}
			results[n] = term
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.opts.logger.LogBatch(ctx, len(specs), 0, err)
		return nil, err
	}
	c.opts.logger.LogBatch(ctx, len(specs), countZero(results), nil)
	return results, nil
}

func countZero[T any](terms []Term[T]) int {
	n := 0
	for _, t := range terms {
		if t.IsZero() {
			n++
		}
	}
	return n
}

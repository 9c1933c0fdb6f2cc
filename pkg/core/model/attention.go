package model

import (
	"github.com/chewxy/math32"

	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/layers"
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
)

// AttentionForward runs scaled dot-product self-attention with a causal
// mask against the running cache, then adds the residual connection. x is
// [n, embed]; cache is extended by n rows as a side effect, and on return
// cache.Rows() == previous rows + n.
//
// The embed-only scaling (1/sqrt(embed)) reflects the single-head design:
// there is no per-head split to divide by instead.
func AttentionForward(x *tensor.T, w *AttentionWeights, cache *Cache) (*tensor.T, error) {
	t := cache.Rows()

	q, err := layers.Linear(x, w.Wq)
	if err != nil {
		return nil, err
	}
	kNew, err := layers.Linear(x, w.Wk)
	if err != nil {
		return nil, err
	}
	vNew, err := layers.Linear(x, w.Wv)
	if err != nil {
		return nil, err
	}

	if err := cache.Append(kNew, vNew); err != nil {
		return nil, err
	}
	kFull, vFull := cache.K, cache.V

	scores, err := tensor.MulTransposeB(q, kFull)
	if err != nil {
		return nil, err
	}
	tensor.Scale(scores, 1.0/math32.Sqrt(float32(x.Cols)))

	if err := tensor.MaskCausal(scores, t, math32.Inf(-1)); err != nil {
		return nil, err
	}

	layers.Softmax(scores)
	if err := assertFiniteRows(scores); err != nil {
		return nil, err
	}

	context, err := tensor.Mul(scores, vFull)
	if err != nil {
		return nil, err
	}

	o, err := layers.Linear(context, w.Wo)
	if err != nil {
		return nil, err
	}

	return tensor.Add(x, o)
}

// assertFiniteRows guards the invariant that no softmax row can have a
// zero-finite-entry denominator when the causal mask is applied
// correctly: the diagonal entry (a query attending to itself) is never
// masked, so every row always has at least one unmasked score.
func assertFiniteRows(probs *tensor.T) error {
	r, c := int(probs.Rows), int(probs.Cols)
	for i := 0; i < r; i++ {
		row := probs.Data[i*c : (i+1)*c]
		ok := false
		for _, v := range row {
			if !math32.IsNaN(v) && !math32.IsInf(v, 0) {
				ok = true
				break
			}
		}
		if !ok {
			return errs.Newf(errs.InvalidInput, "attention: softmax row %d has no finite entry", i)
		}
	}
	return nil
}

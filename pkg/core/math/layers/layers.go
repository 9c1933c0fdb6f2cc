// Package layers implements the layer primitives the transformer and
// attention blocks are built from: affine projection, embedding lookup,
// the rectifier, and row-wise stable softmax. Every function is stateless
// and operates on tensor.T/tensor.I values; the only state here is the
// immutable weight structs the loader populates once at startup.
package layers

import (
	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/primitive/fp32"
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
)

// LinearWeights is an owned (W, b) pair for an affine projection. W has
// shape [out, in]; b has shape [1, out]. Immutable after construction.
type LinearWeights struct {
	W *tensor.T
	B *tensor.T
}

// Linear computes x . Wᵀ + b, where x is [n, in] and the result is
// [n, out]. The bias adds as a row broadcast.
func Linear(x *tensor.T, w *LinearWeights) (*tensor.T, error) {
	if x.Cols != w.W.Cols {
		return nil, errs.Newf(errs.InvalidInput, "layers.Linear: input width %d does not match weight in-dim %d", x.Cols, w.W.Cols)
	}
	out, err := tensor.MulTransposeB(x, w.W)
	if err != nil {
		return nil, err
	}
	return tensor.Add(out, w.B)
}

// EmbeddingWeights is an owned [vocab, embed] table. Immutable after
// construction.
type EmbeddingWeights struct {
	Table *tensor.T
}

// Lookup gathers rows of the embedding table named by the 1xk index
// vector idx, yielding [k, embed]. Any index >= vocabulary size fails
// with InvalidInput (an out-of-vocabulary token, not a generic
// out-of-bounds access).
func Lookup(idx *tensor.I, w *EmbeddingWeights) (*tensor.T, error) {
	if idx.Rows != 1 {
		return nil, errs.Newf(errs.InvalidInput, "layers.Lookup: idx must be 1xk, got [%d,%d]", idx.Rows, idx.Cols)
	}
	vocab := w.Table.Rows
	for _, id := range idx.Data {
		if id >= vocab {
			return nil, errs.Newf(errs.InvalidInput, "layers.Lookup: token id %d exceeds vocab size %d", id, vocab)
		}
	}
	return tensor.RowSelect(w.Table, idx)
}

// ReLU returns a freshly allocated tensor with max(x, 0) applied
// elementwise; equivalent to tensor.ClampMin(0) but built on the fp32
// activation kernel directly.
func ReLU(x *tensor.T) *tensor.T {
	out := &tensor.T{Rows: x.Rows, Cols: x.Cols, Data: make([]float32, len(x.Data))}
	fp32.ReLU(out.Data, x.Data, len(x.Data))
	return out
}

// Softmax applies row-wise softmax to x in place, subtracting each row's
// maximum before exponentiating for numerical stability. A row containing
// -Inf entries (from the causal mask) yields zero probability mass on
// those entries, since exp(-Inf - max) underflows to 0.
func Softmax(x *tensor.T) {
	fp32.Softmax2DCols(x.Data, int(x.Rows), int(x.Cols))
}

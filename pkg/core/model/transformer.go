package model

import (
	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/layers"
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
)

// Forward runs the single-layer decoder over tokens (a 1xn index vector)
// starting at absolute position pos (0 during prefill; the current cache
// length during decode), returning the [n, vocab] logits row. cache is
// mutated in place by the attention sub-block.
func Forward(tokens *tensor.I, pos int, p *Parameters, cache *Cache) (*tensor.T, error) {
	if tokens.Rows != 1 {
		return nil, errs.Newf(errs.InvalidInput, "model.Forward: tokens must be 1xn, got [%d,%d]", tokens.Rows, tokens.Cols)
	}
	n := int(tokens.Cols)
	if pos+n > int(p.MaxSeqLen) {
		return nil, errs.Newf(errs.InvalidInput, "model.Forward: pos+n (%d) exceeds max_seq_len (%d)", pos+n, p.MaxSeqLen)
	}

	x, err := layers.Lookup(tokens, p.TokenEmbed)
	if err != nil {
		return nil, err
	}

	posEmbed, err := tensor.RowSlice(p.PosEmbed, pos, n)
	if err != nil {
		return nil, err
	}
	x, err = tensor.Add(x, posEmbed)
	if err != nil {
		return nil, err
	}

	x, err = AttentionForward(x, p.Attn, cache)
	if err != nil {
		return nil, err
	}

	h, err := layers.Linear(x, p.W1)
	if err != nil {
		return nil, err
	}
	h = layers.ReLU(h)
	h, err = layers.Linear(h, p.W2)
	if err != nil {
		return nil, err
	}
	x, err = tensor.Add(x, h)
	if err != nil {
		return nil, err
	}

	return layers.Linear(x, p.LMHead)
}

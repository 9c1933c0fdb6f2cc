package model

import (
	"github.com/retrolm/retrolm/pkg/core/math/layers"
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
)

// AttentionWeights holds the four projections (query, key, value, output)
// of the attention block, all of shape [embed, embed]. Immutable after
// construction.
type AttentionWeights struct {
	Wq *layers.LinearWeights
	Wk *layers.LinearWeights
	Wv *layers.LinearWeights
	Wo *layers.LinearWeights
}

// Parameters aggregates the full single-layer decoder's weights. The
// language-model head's W is tied to TokenEmbed.Table: this
// implementation keeps a separate LinearWeights whose W field is the same
// *tensor.T pointer as TokenEmbed.Table, so both views stay bit-identical
// without the loader copying the matrix twice.
type Parameters struct {
	TokenEmbed *layers.EmbeddingWeights
	PosEmbed   *tensor.T
	Attn       *AttentionWeights
	W1         *layers.LinearWeights
	W2         *layers.LinearWeights
	LMHead     *layers.LinearWeights

	Embed     uint32
	FF        uint32
	Vocab     uint32
	MaxSeqLen uint32
}

// TieLMHead constructs the language-model head's LinearWeights sharing
// the token-embedding matrix: a shared read-only reference rather than a
// duplicated copy.
func TieLMHead(tokenEmbed *layers.EmbeddingWeights, bias *tensor.T) *layers.LinearWeights {
	return &layers.LinearWeights{W: tokenEmbed.Table, B: bias}
}

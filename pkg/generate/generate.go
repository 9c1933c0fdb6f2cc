// Package generate implements the autoregressive generation loop: prefill
// of the prompt into a fresh cache, then step-by-step temperature-sampled
// decoding with streaming emission and the stop rule.
package generate

import (
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
	"github.com/retrolm/retrolm/pkg/core/model"
	"github.com/retrolm/retrolm/pkg/core/sampling"
)

// Sink receives one printable byte per streamed emission. Implementations
// must flush immediately; the generation loop relies on each call
// surfacing its byte before the next decode step begins.
type Sink interface {
	Emit(b byte)
}

// Options configures one generation run.
type Options struct {
	MaxTokens   int
	Temperature float32
}

// Run prefills the cache with prompt (byte-identity tokenization), then
// decodes up to opts.MaxTokens tokens, streaming printable bytes to sink
// and stopping on '\n' or a byte outside the printable range (>= 127).
// It returns the full sequence of bytes appended to the output (including
// the prompt), matching the generation state's owned token sequence.
func Run(prompt []byte, params *model.Parameters, sampler *sampling.Sampler, sink Sink, opts Options) ([]byte, error) {
	cache, err := model.NewCache(params.Embed)
	if err != nil {
		return nil, err
	}

	output := append([]byte(nil), prompt...)
	last := byte(0)

	if len(prompt) > 0 {
		promptIDs := make([]uint32, len(prompt))
		for i, b := range prompt {
			promptIDs[i] = uint32(b)
		}
		promptTokens := tensor.FromValues(promptIDs...)
		if _, err := model.Forward(promptTokens, 0, params, cache); err != nil {
			return nil, err
		}
		last = prompt[len(prompt)-1]
	}

	for step := 0; step < opts.MaxTokens; step++ {
		idx := tensor.FromValues(uint32(last))
		logits, err := model.Forward(idx, cache.Rows(), params, cache)
		if err != nil {
			return nil, err
		}

		next, err := sampler.Sample(logits, opts.Temperature)
		if err != nil {
			return nil, err
		}
		token := byte(next)

		if token == '\n' || next >= 127 {
			break
		}

		output = append(output, token)
		if token >= 32 && token <= 126 {
			sink.Emit(token)
		}
		last = token
	}

	return output, nil
}

// Package sampling implements temperature sampling over a logits row, the
// final step of each decode iteration in the generation loop.
package sampling

import (
	"math/rand"

	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/primitive/fp32"
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
)

// Sampler owns the PRNG state. Exactly one uniform draw is consumed per
// Sample call, so the token sequence is reproducible for a given seed.
type Sampler struct {
	rng *rand.Rand
}

// New builds a Sampler seeded with seed. The binary seeds from wall-clock
// time at startup; tests pass a fixed constant to get reproducible draws.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws the next token index from a [1, V] logits row at the given
// temperature. It is non-destructive: logits is read but never mutated,
// so the caller may inspect it afterwards. A non-positive temperature is
// substituted with 1.0 rather than treated as an error.
func (s *Sampler) Sample(logits *tensor.T, temperature float32) (int, error) {
	if logits.Rows != 1 {
		return 0, errs.Newf(errs.InvalidInput, "sampling.Sample: logits must be 1xV, got [%d,%d]", logits.Rows, logits.Cols)
	}
	if temperature <= 0 {
		temperature = 1.0
	}

	v := int(logits.Cols)
	probs := make([]float32, v)
	invTemp := 1.0 / temperature
	for i, val := range logits.Data {
		probs[i] = val * invTemp
	}
	// Softmax1D finds its own row maximum before exponentiating, so
	// scaling by temperature up front yields exp((val-m)/temperature).
	fp32.Softmax1D(probs, v)

	u := float32(s.rng.Float64())
	var cumsum float32
	for i, p := range probs {
		cumsum += p
		if cumsum > u {
			return i, nil
		}
	}
	return v - 1, nil
}

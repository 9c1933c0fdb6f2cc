package fp32

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReLUClampsNegatives(t *testing.T) {
	dst := make([]float32, 4)
	ReLU(dst, []float32{-1, 0, 2, -5}, 4)
	assert.Equal(t, []float32{0, 0, 2, 0}, dst)
}

func TestReLUInPlace(t *testing.T) {
	buf := []float32{-3, 4}
	ReLU(buf, buf, 2)
	assert.Equal(t, []float32{0, 4}, buf)
}

func TestSoftmax1DStabilityOnExtremeSpread(t *testing.T) {
	dst := []float32{-100, 0, 100}
	Softmax1D(dst, 3)
	for _, v := range dst {
		assert.False(t, math.IsNaN(float64(v)))
	}
	var sum float32
	for _, v := range dst {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
	assert.Greater(t, dst[2], float32(0.99))
}

func TestSoftmax1DUniformOnEqualInput(t *testing.T) {
	dst := []float32{5, 5, 5, 5}
	Softmax1D(dst, 4)
	for _, v := range dst {
		assert.InDelta(t, 0.25, v, 1e-4)
	}
}

func TestSoftmax2DColsRowsSumToOne(t *testing.T) {
	dst := []float32{1, 2, 3, -100, 0, 100}
	Softmax2DCols(dst, 2, 3)
	for row := 0; row < 2; row++ {
		var sum float32
		for col := 0; col < 3; col++ {
			v := dst[row*3+col]
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-4)
	}
	assert.Greater(t, dst[1*3+2], float32(0.99))
}

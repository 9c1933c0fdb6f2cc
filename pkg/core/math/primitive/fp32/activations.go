package fp32

import (
	"math"
)

// ReLU applies the Rectified Linear Unit activation function: dst[i] = max(0, src[i])
// dst and src can be the same slice for in-place operation.
func ReLU(dst, src []float32, size int) {
	if size <= 0 {
		return
	}

	for i := 0; i < size; i++ {
		if src[i] > 0 {
			dst[i] = src[i]
		} else {
			dst[i] = 0
		}
	}
}

// Softmax1D applies softmax to a 1D array in-place: dst[i] = exp(dst[i] - max) / sum(exp(dst[j] - max))
func Softmax1D(dst []float32, size int) {
	if size <= 0 {
		return
	}

	// Find max value for numerical stability
	maxVal := dst[0]
	for i := 1; i < size; i++ {
		if dst[i] > maxVal {
			maxVal = dst[i]
		}
	}

	// Compute exp(x - max) and sum
	var sum float32
	for i := 0; i < size; i++ {
		dst[i] = float32(math.Exp(float64(dst[i] - maxVal)))
		sum += dst[i]
	}

	// Normalize
	if sum > 0 {
		invSum := 1.0 / sum
		for i := 0; i < size; i++ {
			dst[i] *= invSum
		}
	}
}

// Softmax2DCols applies softmax along columns (dim=1) of a 2D array: row-wise softmax.
// For each row i: dst[i][j] = exp(dst[i][j] - max) / sum(exp(dst[i][k] - max))
func Softmax2DCols(dst []float32, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}

	for i := 0; i < rows; i++ {
		rowStart := i * cols

		// Find max value in this row
		maxVal := dst[rowStart]
		for j := 1; j < cols; j++ {
			val := dst[rowStart+j]
			if val > maxVal {
				maxVal = val
			}
		}

		// Compute exp(x - max) and sum for this row
		var sum float32
		for j := 0; j < cols; j++ {
			idx := rowStart + j
			val := dst[idx] - maxVal
			dst[idx] = float32(math.Exp(float64(val)))
			sum += dst[idx]
		}

		// Normalize this row
		if sum > 0 {
			invSum := 1.0 / sum
			for j := 0; j < cols; j++ {
				idx := rowStart + j
				dst[idx] *= invSum
			}
		}
	}
}

package tensor

import (
	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/primitive/fp32"
)

// Scale multiplies every element of m by alpha, in place.
func Scale(m *T, alpha float32) {
	fp32.Scal(m.Data, 1, len(m.Data), alpha)
}

// Shift adds beta to every element of m, in place.
func Shift(m *T, beta float32) {
	fp32.SumArrInPlace(m.Data, beta, len(m.Data))
}

// Clamp bounds every element of m to [lo, hi], in place. lo must be < hi.
func Clamp(m *T, lo, hi float32) error {
	if !(lo < hi) {
		return errs.Newf(errs.InvalidInput, "tensor.Clamp: lo (%v) must be < hi (%v)", lo, hi)
	}
	for i, v := range m.Data {
		switch {
		case v < lo:
			m.Data[i] = lo
		case v > hi:
			m.Data[i] = hi
		}
	}
	return nil
}

// ClampMin bounds every element of m to be >= lo, in place. This is the
// operation the Rectifier layer primitive is built on (ClampMin(0)).
func ClampMin(m *T, lo float32) {
	for i, v := range m.Data {
		if v < lo {
			m.Data[i] = lo
		}
	}
}

// MaskUpperTriangle sets every m[i,j] with j > i to value, leaving the
// diagonal and lower triangle untouched. Defined only for square
// matrices; this is the causal-mask primitive used by the attention
// block, but it operates on whatever square slice the caller passes it
// (the attention block instead applies the position-shifted variant in
// MaskCausal, below, since during decode the mask window is not simply
// upper-triangular against the full score matrix).
func MaskUpperTriangle(m *T, value float32) error {
	if m.Rows != m.Cols {
		return errs.Newf(errs.InvalidInput, "tensor.MaskUpperTriangle: not square: [%d,%d]", m.Rows, m.Cols)
	}
	n := int(m.Rows)
	for i := 0; i < n; i++ {
		rowData := m.Data[i*n : (i+1)*n]
		for j := i + 1; j < n; j++ {
			rowData[j] = value
		}
	}
	return nil
}

// MaskCausal sets S[i,j] = value for every j > t+i, matching the
// attention block's absolute-position causal rule: a query at local row
// i (0-based within the n new tokens) corresponds to absolute position
// t+i and may attend to absolute positions 0..t+i inclusive. S has shape
// [n, t+n]. When t == 0 this reduces to the plain upper-triangular mask.
func MaskCausal(s *T, t int, value float32) error {
	n := int(s.Rows)
	width := int(s.Cols)
	if width != t+n {
		return errs.Newf(errs.InvalidInput, "tensor.MaskCausal: scores width %d does not match t+n (%d+%d)", width, t, n)
	}
	for i := 0; i < n; i++ {
		rowData := s.Data[i*width : (i+1)*width]
		for j := t + i + 1; j < width; j++ {
			rowData[j] = value
		}
	}
	return nil
}

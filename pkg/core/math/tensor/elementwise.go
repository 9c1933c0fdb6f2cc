package tensor

import (
	"github.com/chewxy/math32"

	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/primitive/fp32"
)

// broadcastKind classifies how m2 broadcasts against m1's [r,c] shape, or
// reports InvalidInput for any shape that isn't elementwise, row-vector,
// or column-vector.
type broadcastKind int

const (
	bcElementwise broadcastKind = iota
	bcRow                       // m2 is [1, c]: broadcast down rows
	bcCol                       // m2 is [r, 1]: broadcast across columns
)

func classifyBroadcast(m1, m2 *T, op string) (broadcastKind, error) {
	switch {
	case m2.Rows == m1.Rows && m2.Cols == m1.Cols:
		return bcElementwise, nil
	case m2.Rows == 1 && m2.Cols == m1.Cols:
		return bcRow, nil
	case m2.Rows == m1.Rows && m2.Cols == 1:
		return bcCol, nil
	default:
		return 0, errs.Newf(errs.InvalidInput, "%s: shape [%d,%d] does not broadcast against [%d,%d]", op, m2.Rows, m2.Cols, m1.Rows, m1.Cols)
	}
}

// broadcastAxpy implements m1 + alpha*m2 with m2 broadcasting per the
// data model: m2 may be [r,c], [1,c], or [r,1]. Add is alpha=1, Sub is
// alpha=-1; both reduce to a row copy (fp32.Copy) followed by either a
// vector AXPY (bcElementwise/bcRow) or a scalar shift (bcCol), reusing
// the BLAS-style kernel layer instead of a hand-rolled loop.
func broadcastAxpy(m1, m2 *T, op string, alpha float32) (*T, error) {
	kind, err := classifyBroadcast(m1, m2, op)
	if err != nil {
		return nil, err
	}

	out, err := New(m1.Rows, m1.Cols)
	if err != nil {
		return nil, err
	}

	r, c := int(m1.Rows), int(m1.Cols)
	for i := 0; i < r; i++ {
		rowOut := out.Data[i*c : (i+1)*c]
		rowA := m1.Data[i*c : (i+1)*c]
		fp32.Copy(rowOut, rowA, 1, 1, c)
		switch kind {
		case bcElementwise:
			fp32.Axpy(rowOut, m2.Data[i*c:(i+1)*c], 1, 1, c, alpha)
		case bcRow:
			fp32.Axpy(rowOut, m2.Data[:c], 1, 1, c, alpha)
		case bcCol:
			fp32.SumArrInPlace(rowOut, alpha*m2.Data[i], c)
		}
	}
	return out, nil
}

// Add computes m1 + m2 with broadcasting per the data model: m2 may be
// [r,c], [1,c], or [r,1].
func Add(m1, m2 *T) (*T, error) {
	return broadcastAxpy(m1, m2, "tensor.Add", 1)
}

// Sub computes m1 - m2 with the same broadcasting rules as Add.
func Sub(m1, m2 *T) (*T, error) {
	return broadcastAxpy(m1, m2, "tensor.Sub", -1)
}

// Div computes m1 / m2 elementwise with the same broadcasting rules as
// Add. There is no BLAS-style kernel for elementwise division, so this
// stays a direct loop; division by zero is not validated here, since no
// caller in the core needs to guard against it.
func Div(m1, m2 *T) (*T, error) {
	kind, err := classifyBroadcast(m1, m2, "tensor.Div")
	if err != nil {
		return nil, err
	}

	out, err := New(m1.Rows, m1.Cols)
	if err != nil {
		return nil, err
	}

	r, c := int(m1.Rows), int(m1.Cols)
	for i := 0; i < r; i++ {
		rowOut := out.Data[i*c : (i+1)*c]
		rowA := m1.Data[i*c : (i+1)*c]
		switch kind {
		case bcElementwise:
			rowB := m2.Data[i*c : (i+1)*c]
			for j := 0; j < c; j++ {
				rowOut[j] = rowA[j] / rowB[j]
			}
		case bcRow:
			for j := 0; j < c; j++ {
				rowOut[j] = rowA[j] / m2.Data[j]
			}
		case bcCol:
			scalar := m2.Data[i]
			for j := 0; j < c; j++ {
				rowOut[j] = rowA[j] / scalar
			}
		}
	}
	return out, nil
}

// Exp returns a new tensor with exp applied elementwise.
func Exp(m *T) *T {
	out := &T{Rows: m.Rows, Cols: m.Cols, Data: make([]float32, len(m.Data))}
	for i, v := range m.Data {
		out.Data[i] = math32.Exp(v)
	}
	return out
}

// Mul computes the matrix product m1 * m2 (m1.Cols must equal m2.Rows).
func Mul(m1, m2 *T) (*T, error) {
	if m1.Cols != m2.Rows {
		return nil, errs.Newf(errs.InvalidInput, "tensor.Mul: inner dims [%d,%d] x [%d,%d] mismatch", m1.Rows, m1.Cols, m2.Rows, m2.Cols)
	}
	out, err := New(m1.Rows, m2.Cols)
	if err != nil {
		return nil, err
	}
	if m1.Rows == 0 || m2.Cols == 0 {
		return out, nil
	}
	fp32.Gemm_NN(out.Data, m1.Data, m2.Data, int(m2.Cols), int(m1.Cols), int(m2.Cols), int(m1.Rows), int(m2.Cols), int(m1.Cols), 1.0, 0.0)
	return out, nil
}

// MulTransposeB computes m1 * m2^T, used by the attention block for
// Q . K_full^T without materializing the transpose of K_full.
func MulTransposeB(m1, m2 *T) (*T, error) {
	if m1.Cols != m2.Cols {
		return nil, errs.Newf(errs.InvalidInput, "tensor.MulTransposeB: inner dims [%d,%d] x [%d,%d]^T mismatch", m1.Rows, m1.Cols, m2.Rows, m2.Cols)
	}
	out, err := New(m1.Rows, m2.Rows)
	if err != nil {
		return nil, err
	}
	if m1.Rows == 0 || m2.Rows == 0 {
		return out, nil
	}
	fp32.Gemm_NT(out.Data, m1.Data, m2.Data, int(m2.Rows), int(m1.Cols), int(m2.Cols), int(m1.Rows), int(m2.Rows), int(m1.Cols), 1.0, 0.0)
	return out, nil
}

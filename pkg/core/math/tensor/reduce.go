package tensor

import (
	"github.com/chewxy/math32"

	"github.com/retrolm/retrolm/pkg/core/errs"
)

// Sum reduces m along dim (0 or 1), yielding [1,c] for dim=0 or [r,1] for
// dim=1.
func Sum(m *T, dim int) (*T, error) {
	return reduce(m, dim, "tensor.Sum", func(acc, v float32) float32 { return acc + v }, 0)
}

// Max reduces m along dim (0 or 1), yielding [1,c] for dim=0 or [r,1] for
// dim=1.
func Max(m *T, dim int) (*T, error) {
	return reduce(m, dim, "tensor.Max", func(acc, v float32) float32 {
		if v > acc {
			return v
		}
		return acc
	}, -math32.MaxFloat32)
}

func reduce(m *T, dim int, op string, f func(acc, v float32) float32, init float32) (*T, error) {
	r, c := int(m.Rows), int(m.Cols)
	switch dim {
	case 0:
		out, err := New(1, m.Cols)
		if err != nil {
			return nil, err
		}
		for j := 0; j < c; j++ {
			out.Data[j] = init
		}
		for i := 0; i < r; i++ {
			rowData := m.Data[i*c : (i+1)*c]
			for j := 0; j < c; j++ {
				out.Data[j] = f(out.Data[j], rowData[j])
			}
		}
		return out, nil
	case 1:
		out, err := New(m.Rows, 1)
		if err != nil {
			return nil, err
		}
		for i := 0; i < r; i++ {
			acc := init
			rowData := m.Data[i*c : (i+1)*c]
			for j := 0; j < c; j++ {
				acc = f(acc, rowData[j])
			}
			out.Data[i] = acc
		}
		return out, nil
	default:
		return nil, errs.Newf(errs.InvalidInput, "%s: dim must be 0 or 1, got %d", op, dim)
	}
}

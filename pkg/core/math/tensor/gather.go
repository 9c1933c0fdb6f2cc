package tensor

import "github.com/retrolm/retrolm/pkg/core/errs"

// RowSelect gathers rows of m named by the 1xk index vector idx, yielding
// a [k, m.Cols] tensor. Any index >= m.Rows fails with IndexError.
func RowSelect(m *T, idx *I) (*T, error) {
	if idx.Rows != 1 {
		return nil, errs.Newf(errs.InvalidInput, "tensor.RowSelect: idx must be 1xk, got [%d,%d]", idx.Rows, idx.Cols)
	}
	k := int(idx.Cols)
	out, err := New(uint32(k), m.Cols)
	if err != nil {
		return nil, err
	}
	c := int(m.Cols)
	for i := 0; i < k; i++ {
		r := idx.Data[i]
		if r >= m.Rows {
			return nil, errs.Newf(errs.IndexError, "tensor.RowSelect: index %d out of range for %d rows", r, m.Rows)
		}
		copy(out.Data[i*c:(i+1)*c], m.Data[int(r)*c:int(r+1)*c])
	}
	return out, nil
}

// RowSlice gathers the contiguous row range [from, from+n) of m, used by
// positional-embedding lookup (select rows pos..pos+n). Out-of-range
// bounds fail with IndexError.
func RowSlice(m *T, from, n int) (*T, error) {
	if from < 0 || n < 0 || from+n > int(m.Rows) {
		return nil, errs.Newf(errs.IndexError, "tensor.RowSlice: range [%d,%d) out of bounds for %d rows", from, from+n, m.Rows)
	}
	out, err := New(uint32(n), m.Cols)
	if err != nil {
		return nil, err
	}
	c := int(m.Cols)
	copy(out.Data, m.Data[from*c:(from+n)*c])
	return out, nil
}

// VStack concatenates a and b row-wise, returning a fresh [a.Rows+b.Rows,
// cols] tensor. a and b must share the same column count; a may have 0
// rows (the cache's empty state).
func VStack(a, b *T) (*T, error) {
	if a.Cols != b.Cols {
		return nil, errs.Newf(errs.InvalidInput, "tensor.VStack: col mismatch %d vs %d", a.Cols, b.Cols)
	}
	out, err := New(a.Rows+b.Rows, a.Cols)
	if err != nil {
		return nil, err
	}
	copy(out.Data, a.Data)
	copy(out.Data[len(a.Data):], b.Data)
	return out, nil
}

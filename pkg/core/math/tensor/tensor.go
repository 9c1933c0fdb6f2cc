// Package tensor implements the row-major 2-D numeric arrays the core
// operates on: T (32-bit float) and I (32-bit unsigned index). Operations
// with a matching raw-array kernel in pkg/core/math/primitive/fp32 (matrix
// products, add/sub, scale, shift) call it; the rest (division, exp,
// reductions, clamps, gathers, transpose) are direct loops. All of them
// report shape or bounds violations
// through the pkg/core/errs taxonomy instead of panicking, since a tensor
// shape mismatch is always a caller/loader bug and must terminate the
// process cleanly rather than crash it.
package tensor

import (
	"github.com/retrolm/retrolm/pkg/core/errs"
)

// T is a row-major 2-D array of 32-bit floats. The zero value is not
// valid; construct with New. Rows/Cols are unsigned per the data model:
// a tensor's shape is never negative.
type T struct {
	Rows uint32
	Cols uint32
	Data []float32
}

// New allocates a zero-initialized T. Rows may be 0 to represent an empty
// matrix with a known column width (the cache's initial state); Cols must
// always be positive.
func New(rows, cols uint32) (*T, error) {
	if cols == 0 {
		return nil, errs.New(errs.InvalidInput, "tensor.New: cols must be > 0")
	}
	data := make([]float32, int(rows)*int(cols))
	return &T{Rows: rows, Cols: cols, Data: data}, nil
}

// MustNew is New without the error return, for call sites constructing
// tensors from already-validated constants (e.g. tests).
func MustNew(rows, cols uint32) *T {
	m, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows builds a T from literal row data, validating rectangularity.
func FromRows(rows [][]float32) (*T, error) {
	if len(rows) == 0 {
		return nil, errs.New(errs.InvalidInput, "tensor.FromRows: no rows given")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errs.New(errs.InvalidInput, "tensor.FromRows: zero-width rows")
	}
	m, err := New(uint32(len(rows)), uint32(cols))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errs.Newf(errs.InvalidInput, "tensor.FromRows: row %d has %d cols, want %d", i, len(row), cols)
		}
		copy(m.Data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Copy returns a deep copy of m.
func Copy(m *T) *T {
	data := make([]float32, len(m.Data))
	copy(data, m.Data)
	return &T{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// Free releases m's storage and zeroes its shape. After Free, m must not
// be used for any further operation.
func Free(m *T) {
	m.Rows = 0
	m.Cols = 0
	m.Data = nil
}

// Identity builds the n x n identity matrix.
func Identity(n uint32) (*T, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(n); i++ {
		m.Data[i*int(n)+i] = 1
	}
	return m, nil
}


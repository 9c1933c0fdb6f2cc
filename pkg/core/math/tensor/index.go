package tensor

import "github.com/retrolm/retrolm/pkg/core/errs"

// I is a row-major 2-D array of unsigned 32-bit integers, used only for
// token and position identifiers. Shape semantics mirror T exactly.
type I struct {
	Rows uint32
	Cols uint32
	Data []uint32
}

// NewI allocates a zero-initialized I.
func NewI(rows, cols uint32) (*I, error) {
	if cols == 0 {
		return nil, errs.New(errs.InvalidInput, "tensor.NewI: cols must be > 0")
	}
	return &I{Rows: rows, Cols: cols, Data: make([]uint32, int(rows)*int(cols))}, nil
}

// FromValues builds a 1xk index tensor from literal values, the shape
// used throughout the generation loop for token-id rows.
func FromValues(values ...uint32) *I {
	idx := &I{Rows: 1, Cols: uint32(len(values)), Data: make([]uint32, len(values))}
	copy(idx.Data, values)
	return idx
}

// FreeI releases idx's storage and zeroes its shape.
func FreeI(idx *I) {
	idx.Rows = 0
	idx.Cols = 0
	idx.Data = nil
}

package tensor

// blockSize is chosen to suit small L1 caches per the tensor layer's
// transpose contract; 8 rows/columns at a time keeps both the source and
// destination tiles resident while avoiding the thrashing a naive
// row-by-row transpose causes on larger matrices.
const blockSize = 8

// Transpose returns a freshly allocated transposed copy of m, traversing
// in blockSize x blockSize tiles.
func Transpose(m *T) *T {
	r, c := int(m.Rows), int(m.Cols)
	out := &T{Rows: m.Cols, Cols: m.Rows, Data: make([]float32, len(m.Data))}

	for bi := 0; bi < r; bi += blockSize {
		iMax := bi + blockSize
		if iMax > r {
			iMax = r
		}
		for bj := 0; bj < c; bj += blockSize {
			jMax := bj + blockSize
			if jMax > c {
				jMax = c
			}
			for i := bi; i < iMax; i++ {
				srcRow := m.Data[i*c : (i+1)*c]
				for j := bj; j < jMax; j++ {
					out.Data[j*r+i] = srcRow[j]
				}
			}
		}
	}
	return out
}

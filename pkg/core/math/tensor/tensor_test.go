package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroInitializes(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), m.Rows)
	assert.Equal(t, uint32(3), m.Cols)
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, m.Data)
}

func TestNewRejectsZeroCols(t *testing.T) {
	_, err := New(2, 0)
	assert.Error(t, err)
}

func TestNewAllowsZeroRows(t *testing.T) {
	m, err := New(0, 8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.Rows)
	assert.Empty(t, m.Data)
}

func TestCopyIsIndependent(t *testing.T) {
	m := MustNew(2, 2)
	m.Data[0] = 1
	c := Copy(m)
	m.Data[0] = 99
	assert.Equal(t, float32(1), c.Data[0])
}

func TestIdentity(t *testing.T) {
	m, err := Identity(3)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	assert.Equal(t, want.Data, m.Data)
}

func TestMatmulKernel(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	b, _ := FromRows([][]float32{{7, 8}, {9, 10}, {11, 12}})
	c, err := Mul(a, b)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{58, 64}, {139, 154}})
	assert.Equal(t, want.Data, c.Data)
}

func TestMulShapeMismatch(t *testing.T) {
	a := MustNew(2, 3)
	b := MustNew(2, 2)
	_, err := Mul(a, b)
	assert.Error(t, err)
}

func TestMulTransposeBMatchesExplicitTranspose(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	b, _ := FromRows([][]float32{{1, 0, 1}, {0, 1, 1}})
	got, err := MulTransposeB(a, b)
	require.NoError(t, err)
	want, err := Mul(a, Transpose(b))
	require.NoError(t, err)
	assert.Equal(t, want.Data, got.Data)
}

func TestMulTransposeBShapeMismatch(t *testing.T) {
	a := MustNew(2, 3)
	b := MustNew(2, 4)
	_, err := MulTransposeB(a, b)
	assert.Error(t, err)
}

func TestBroadcastAddRowVector(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	rv, _ := FromRows([][]float32{{10, 20, 30}})
	out, err := Add(m, rv)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{11, 22, 33}, {14, 25, 36}})
	assert.Equal(t, want.Data, out.Data)
}

func TestBroadcastAddColVector(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	cv, _ := FromRows([][]float32{{10}, {20}})
	out, err := Add(m, cv)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{11, 12, 13}, {24, 25, 26}})
	assert.Equal(t, want.Data, out.Data)
}

func TestBroadcastAddInvalidShape(t *testing.T) {
	m := MustNew(2, 3)
	bad := MustNew(3, 2)
	_, err := Add(m, bad)
	assert.Error(t, err)
}

func TestTransposeInvolution(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	tt := Transpose(Transpose(m))
	assert.Equal(t, m.Data, tt.Data)
	assert.Equal(t, m.Rows, tt.Rows)
	assert.Equal(t, m.Cols, tt.Cols)
}

func TestTransposeShape(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	tr := Transpose(m)
	assert.Equal(t, uint32(3), tr.Rows)
	assert.Equal(t, uint32(2), tr.Cols)
	want, _ := FromRows([][]float32{{1, 4}, {2, 5}, {3, 6}})
	assert.Equal(t, want.Data, tr.Data)
}

func TestSumDim0(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2}, {3, 4}, {5, 6}})
	s, err := Sum(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 12}, s.Data)
}

func TestSumDim1(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	s, err := Sum(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 7}, s.Data)
}

func TestSumInvalidDim(t *testing.T) {
	m := MustNew(2, 2)
	_, err := Sum(m, 2)
	assert.Error(t, err)
}

func TestMaxDim1(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 9, 2}, {7, 3, 4}})
	mx, err := Max(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 7}, mx.Data)
}

func TestScaleInPlace(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	Scale(m, 2)
	assert.Equal(t, []float32{2, 4, 6, 8}, m.Data)
}

func TestShiftInPlace(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2}})
	Shift(m, 10)
	assert.Equal(t, []float32{11, 12}, m.Data)
}

func TestClampMin(t *testing.T) {
	m, _ := FromRows([][]float32{{-1, 0, 5}})
	ClampMin(m, 0)
	assert.Equal(t, []float32{0, 0, 5}, m.Data)
}

func TestClampRejectsBadBounds(t *testing.T) {
	m := MustNew(1, 1)
	err := Clamp(m, 5, 1)
	assert.Error(t, err)
}

func TestMaskUpperTriangle(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	err := MaskUpperTriangle(m, -1)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{1, -1, -1}, {4, 5, -1}, {7, 8, 9}})
	assert.Equal(t, want.Data, m.Data)
}

func TestMaskUpperTriangleRequiresSquare(t *testing.T) {
	m := MustNew(2, 3)
	err := MaskUpperTriangle(m, 0)
	assert.Error(t, err)
}

func TestMaskCausalPrefill(t *testing.T) {
	s, _ := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	err := MaskCausal(s, 0, -1)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{1, -1, -1}, {4, 5, -1}, {7, 8, 9}})
	assert.Equal(t, want.Data, s.Data)
}

func TestMaskCausalDecodeStepMasksNothing(t *testing.T) {
	s, _ := FromRows([][]float32{{1, 2, 3, 4}})
	err := MaskCausal(s, 3, -1)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, s.Data)
}

func TestRowSelect(t *testing.T) {
	m, _ := FromRows([][]float32{{1, 1}, {2, 2}, {3, 3}})
	idx := FromValues(2, 0)
	out, err := RowSelect(m, idx)
	require.NoError(t, err)
	want, _ := FromRows([][]float32{{3, 3}, {1, 1}})
	assert.Equal(t, want.Data, out.Data)
}

func TestRowSelectOutOfRange(t *testing.T) {
	m := MustNew(2, 2)
	idx := FromValues(5)
	_, err := RowSelect(m, idx)
	assert.Error(t, err)
}

func TestVStackGrowsFromEmpty(t *testing.T) {
	empty := MustNew(0, 4)
	newRows, _ := FromRows([][]float32{{1, 2, 3, 4}})
	out, err := VStack(empty, newRows)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), out.Rows)
	assert.Equal(t, []float32{1, 2, 3, 4}, out.Data)
}

func TestRowSlice(t *testing.T) {
	m, _ := FromRows([][]float32{{1}, {2}, {3}, {4}})
	out, err := RowSlice(m, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 3}, out.Data)
}

func TestRowSliceOutOfBounds(t *testing.T) {
	m := MustNew(3, 1)
	_, err := RowSlice(m, 2, 5)
	assert.Error(t, err)
}

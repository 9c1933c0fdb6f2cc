package weights

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMatrix(t *testing.T, dir, name string, rows, cols uint32, fill float32) {
	t.Helper()
	buf := make([]byte, 8+int(rows)*int(cols)*4)
	binary.LittleEndian.PutUint32(buf[0:4], rows)
	binary.LittleEndian.PutUint32(buf[4:8], cols)
	for i := 0; i < int(rows)*int(cols); i++ {
		binary.LittleEndian.PutUint32(buf[8+i*4:12+i*4], math.Float32bits(fill))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf, 0o644))
}

func writeTestModel(t *testing.T, dir string) {
	t.Helper()
	const embed, ff, vocab, maxSeq = 8, 16, 20, 4
	writeMatrix(t, dir, "token_embed.bin", vocab, embed, 0.01)
	writeMatrix(t, dir, "pos_embed.bin", maxSeq, embed, 0.02)
	for _, proj := range []string{"Wq", "Wk", "Wv", "Wo"} {
		writeMatrix(t, dir, proj+"_weight.bin", embed, embed, 0.03)
		writeMatrix(t, dir, proj+"_bias.bin", 1, embed, 0.04)
	}
	writeMatrix(t, dir, "W1_weight.bin", ff, embed, 0.05)
	writeMatrix(t, dir, "W1_bias.bin", 1, ff, 0.06)
	writeMatrix(t, dir, "W2_weight.bin", embed, ff, 0.07)
	writeMatrix(t, dir, "W2_bias.bin", 1, embed, 0.08)
	writeMatrix(t, dir, "lm_head_bias.bin", 1, vocab, 0.09)
}

func TestLoadAssemblesParameters(t *testing.T) {
	dir := t.TempDir()
	writeTestModel(t, dir)

	p, err := Load(dir)
	require.NoError(t, err)

	assert.EqualValues(t, 8, p.Embed)
	assert.EqualValues(t, 16, p.FF)
	assert.EqualValues(t, 20, p.Vocab)
	assert.EqualValues(t, 4, p.MaxSeqLen)
	assert.Same(t, p.TokenEmbed.Table, p.LMHead.W)
}

func TestLoadRejectsEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeTestModel(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "Wq_weight.bin")))

	_, err := Load(dir)
	assert.Error(t, err)
}

// Package weights loads a pretrained parameter set from a directory of
// binary files. It is an external collaborator to the core: the core
// only ever sees the resulting *model.Parameters, never the file format
// itself.
package weights

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/math/layers"
	"github.com/retrolm/retrolm/pkg/core/math/tensor"
	"github.com/retrolm/retrolm/pkg/core/model"
)

// loadMatrix reads one weight file: a 4-byte LE row count, a 4-byte LE
// column count, then rows*cols*4 bytes of row-major float32 data.
func loadMatrix(path string) (*tensor.T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.FileError, "opening "+path, err)
	}
	defer f.Close()

	var header [8]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, errs.Wrap(errs.FileError, "reading header of "+path, err)
	}
	rows := binary.LittleEndian.Uint32(header[0:4])
	cols := binary.LittleEndian.Uint32(header[4:8])

	m, err := tensor.New(rows, cols)
	if err != nil {
		return nil, errs.Wrap(errs.FileError, "allocating tensor for "+path, err)
	}

	raw := make([]byte, len(m.Data)*4)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, errs.Wrap(errs.FileError, "reading body of "+path, err)
	}
	for i := range m.Data {
		bits := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		m.Data[i] = math.Float32frombits(bits)
	}
	return m, nil
}

// Load reads every expected file from dir and assembles a
// model.Parameters. dir must be a non-empty path to an existing
// directory; a malformed path fails with ValueError, any missing or
// truncated file fails with FileError.
func Load(dir string) (*model.Parameters, error) {
	if dir == "" {
		return nil, errs.New(errs.ValueError, "weights.Load: empty weights directory path")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errs.Wrap(errs.ValueError, "weights.Load: invalid weights directory", err)
	}
	if !info.IsDir() {
		return nil, errs.Newf(errs.ValueError, "weights.Load: %s is not a directory", dir)
	}

	path := func(name string) string { return filepath.Join(dir, name) }

	tokenEmbedTable, err := loadMatrix(path("token_embed.bin"))
	if err != nil {
		return nil, err
	}
	posEmbed, err := loadMatrix(path("pos_embed.bin"))
	if err != nil {
		return nil, err
	}

	linearWeights := func(weightFile, biasFile string) (*layers.LinearWeights, error) {
		w, err := loadMatrix(path(weightFile))
		if err != nil {
			return nil, err
		}
		b, err := loadMatrix(path(biasFile))
		if err != nil {
			return nil, err
		}
		return &layers.LinearWeights{W: w, B: b}, nil
	}

	wq, err := linearWeights("Wq_weight.bin", "Wq_bias.bin")
	if err != nil {
		return nil, err
	}
	wk, err := linearWeights("Wk_weight.bin", "Wk_bias.bin")
	if err != nil {
		return nil, err
	}
	wv, err := linearWeights("Wv_weight.bin", "Wv_bias.bin")
	if err != nil {
		return nil, err
	}
	wo, err := linearWeights("Wo_weight.bin", "Wo_bias.bin")
	if err != nil {
		return nil, err
	}
	w1, err := linearWeights("W1_weight.bin", "W1_bias.bin")
	if err != nil {
		return nil, err
	}
	w2, err := linearWeights("W2_weight.bin", "W2_bias.bin")
	if err != nil {
		return nil, err
	}
	lmHeadBias, err := loadMatrix(path("lm_head_bias.bin"))
	if err != nil {
		return nil, err
	}

	tokenEmbed := &layers.EmbeddingWeights{Table: tokenEmbedTable}

	return &model.Parameters{
		TokenEmbed: tokenEmbed,
		PosEmbed:   posEmbed,
		Attn: &model.AttentionWeights{
			Wq: wq,
			Wk: wk,
			Wv: wv,
			Wo: wo,
		},
		W1:        w1,
		W2:        w2,
		LMHead:    model.TieLMHead(tokenEmbed, lmHeadBias),
		Embed:     tokenEmbedTable.Cols,
		FF:        w1.W.Rows,
		Vocab:     tokenEmbedTable.Rows,
		MaxSeqLen: posEmbed.Rows,
	}, nil
}

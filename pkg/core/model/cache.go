package model

import "github.com/retrolm/retrolm/pkg/core/math/tensor"

// Cache is the append-only key/value accumulator for one generation
// session. It starts empty (rows = 0) and only ever grows; there is no
// reset short of discarding the session. Append is the only mutator:
// rewriting rows already in the cache is never legal.
type Cache struct {
	K *tensor.T
	V *tensor.T
}

// NewCache builds an Empty cache for the given embedding width.
func NewCache(embed uint32) (*Cache, error) {
	k, err := tensor.New(0, embed)
	if err != nil {
		return nil, err
	}
	v, err := tensor.New(0, embed)
	if err != nil {
		return nil, err
	}
	return &Cache{K: k, V: v}, nil
}

// Rows reports the number of tokens the cache has accumulated so far
// (t in the attention block's notation).
func (c *Cache) Rows() int { return int(c.K.Rows) }

// Append extends the cache with kNew and vNew, replacing K and V with the
// concatenated result. After Append, c.K.Rows == c.V.Rows == previous
// rows + kNew.Rows.
func (c *Cache) Append(kNew, vNew *tensor.T) error {
	kFull, err := tensor.VStack(c.K, kNew)
	if err != nil {
		return err
	}
	vFull, err := tensor.VStack(c.V, vNew)
	if err != nil {
		return err
	}
	c.K = kFull
	c.V = vFull
	return nil
}

// Free releases the cache's storage. After Free the cache must not be
// used for any further forward pass.
func (c *Cache) Free() {
	tensor.Free(c.K)
	tensor.Free(c.V)
}

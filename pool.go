// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

import "sync"

// Codec state is a handful of fixed arrays, so pooled values are reused by
// plain re-initialization. The pools back the one-shot helpers and the
// Simulate snapshots.
var (
	compressorPool = sync.Pool{
		New: func() any {
			return &Compressor{}
		},
	}
	decompressorPool = sync.Pool{
		New: func() any {
			return &Decompressor{}
		},
	}
)

// acquireCompressor takes a pooled compressor initialized for dictSize.
func acquireCompressor(dictSize int) (*Compressor, error) {
	switch dictSize {
	case 1024, 2048, 4096:
	default:
		return nil, ErrDictionarySize
	}

	c := compressorPool.Get().(*Compressor)
	c.init(dictSize)
	return c, nil
}

func releaseCompressor(c *Compressor) {
	if c == nil {
		return
	}
	compressorPool.Put(c)
}

// acquireDecompressor takes a pooled decompressor reset to the start state.
func acquireDecompressor() *Decompressor {
	d := decompressorPool.Get().(*Decompressor)
	d.Reset()
	return d
}

func releaseDecompressor(d *Decompressor) {
	if d == nil {
		return
	}
	decompressorPool.Put(d)
}

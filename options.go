// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

// CompressOptions configures compression.
type CompressOptions struct {
	// DictSize is the sliding dictionary size: 1024, 2048 or 4096 bytes.
	// A larger dictionary gives better ratios on inputs with distant
	// repetitions. Zero selects the default (4096).
	DictSize int
}

// DefaultCompressOptions returns options with the 4 KiB dictionary.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{DictSize: maxDictSize}
}

// DecompressOptions configures decompression.
// The zero value (or a nil pointer at the call sites) applies no limits.
type DecompressOptions struct {
	// MaxOutputSize limits how many bytes Decompress may produce (0 = no
	// limit). The compressed form carries no size field and a short input can
	// legally expand by a factor of ~190, so callers handling untrusted data
	// should set this.
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no input or output limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

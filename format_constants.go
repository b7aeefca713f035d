// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

// DCL implode wire format constants: literal modes, dictionary selectors,
// match length bounds, and the compressor's hash parameters.

// Header byte 0: how literals are stored.
const (
	litModeFixed = 0 // raw 8-bit literal values
	litModeCoded = 1 // ASCII-biased prefix coded literals
)

// Header byte 1: dictionary size selector s, dictionary size = 64 << s.
const (
	minSelector = 4
	maxSelector = 6
	minDictSize = 64 << minSelector // 1024
	maxDictSize = 64 << maxSelector // 4096
)

// Match length bounds.
const (
	minMatchLen = 3   // shortest match the compressor emits
	maxMatchLen = 518 // longest match expressible on the wire
	eosLen      = 519 // length value reserved for the end-of-stream marker

	// The wire also supports length-2 matches; those carry only two low
	// distance bits, so their distance must stay below 256.
	shortMatchLen     = 2
	shortMatchLowBits = 2
)

// Compressor hash chain parameters: a 9-bit rolling hash over three bytes.
const (
	hashSize = 512
	hashMask = hashSize - 1
	noChain  = 0xFFFF // empty head slot / end of a hash chain
)

// hashStep folds one byte into the rolling hash. After three folds the hash
// depends on exactly the last three bytes: ((a<<6) ^ (b<<3) ^ c) & 0x1FF.
func hashStep(h uint32, b byte) uint32 {
	return ((h << 3) ^ uint32(b)) & hashMask
}

// selectorFor maps a validated dictionary size to its wire selector.
func selectorFor(dictSize int) int {
	switch dictSize {
	case 1024:
		return 4
	case 2048:
		return 5
	default:
		return 6
	}
}

const (
	maxUint = ^uint(0)
	maxInt  = int(maxUint >> 1)
)

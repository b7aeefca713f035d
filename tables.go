// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

// Prefix code tables for the implode bit stream. The three code sets (16
// match length slots, 64 distance upper parts, 256 coded literals) are
// canonical prefix codes defined by their code lengths; on the wire each code
// is stored bit-reversed and packed LSB-first. The compact lists below hold
// one byte per run of equal lengths: repeat count in the high four bits
// (count-1) and the code length in the low four bits.
var (
	lenCodeLensPacked  = [...]byte{0x02, 0x23, 0x24, 0x35, 0x26, 0x17}
	distCodeLensPacked = [...]byte{0x02, 0x14, 0x35, 0xE6, 0xF7, 0x97, 0xF8}
	litCodeLensPacked  = [...]byte{
		11, 124, 8, 7, 28, 7, 188, 13, 76, 4, 10, 8, 12, 10, 12, 10, 8, 23, 8,
		9, 7, 6, 7, 8, 7, 6, 55, 8, 23, 24, 12, 11, 7, 9, 11, 12, 6, 7, 22, 5,
		7, 24, 6, 11, 9, 6, 7, 22, 7, 11, 38, 7, 9, 8, 25, 11, 8, 11, 9, 12,
		8, 12, 5, 38, 5, 38, 5, 11, 7, 5, 6, 21, 6, 10, 53, 8, 7, 24, 10, 27,
		44, 253, 253, 253, 252, 252, 252, 13, 12, 45, 12, 45, 12, 61, 12, 45,
		44, 173,
	}
)

// Match length slots in canonical code order: a slot covers lengths
// lenBase[s] .. lenBase[s]+2^lenExtra[s]-1; the extra bits follow the prefix
// code unreversed. Slot 15 tops out at 519, the end-of-stream value.
var (
	lenBase  = [16]uint16{3, 2, 4, 5, 6, 7, 8, 9, 10, 12, 16, 24, 40, 72, 136, 264}
	lenExtra = [16]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}
)

// litDecodeBits is the longest literal code length.
const litDecodeBits = 13

// Encoder tables, filled at init: wire (bit-reversed) codes and their widths.
var (
	lenCodes    [16]uint16
	lenCodeLens [16]uint8
	lenSlotOf   [eosLen + 1]uint8

	distCodes    [64]uint16
	distCodeLens [64]uint8

	litCodes    [256]uint16
	litCodeLens [256]uint8
)

// Decoder tables, indexed by the low bits of the bit buffer. Entries pack the
// decoded symbol with the number of code bits to consume. A zero entry in
// litDecode marks a hole in the literal code space.
var (
	lenDecode  [128]uint8               // slot<<3 | width
	distDecode [256]uint16              // upper<<4 | width
	litDecode  [1 << litDecodeBits]uint16 // literal<<4 | width
)

func init() {
	var lens [256]uint8

	n := unpackCodeLens(lenCodeLensPacked[:], lens[:])
	copy(lenCodeLens[:], lens[:n])
	assignCanonicalCodes(lens[:n], lenCodes[:])
	for slot := range lenCodes {
		lo := int(lenBase[slot])
		hi := lo + 1<<lenExtra[slot] - 1
		for l := lo; l <= hi; l++ {
			lenSlotOf[l] = uint8(slot)
		}
		for idx := int(lenCodes[slot]); idx < len(lenDecode); idx += 1 << lenCodeLens[slot] {
			lenDecode[idx] = uint8(slot)<<3 | lenCodeLens[slot]
		}
	}

	n = unpackCodeLens(distCodeLensPacked[:], lens[:])
	copy(distCodeLens[:], lens[:n])
	assignCanonicalCodes(lens[:n], distCodes[:])
	for upper := range distCodes {
		for idx := int(distCodes[upper]); idx < len(distDecode); idx += 1 << distCodeLens[upper] {
			distDecode[idx] = uint16(upper)<<4 | uint16(distCodeLens[upper])
		}
	}

	n = unpackCodeLens(litCodeLensPacked[:], lens[:])
	copy(litCodeLens[:], lens[:n])
	assignCanonicalCodes(lens[:n], litCodes[:])
	for lit := range litCodes {
		for idx := int(litCodes[lit]); idx < len(litDecode); idx += 1 << litCodeLens[lit] {
			litDecode[idx] = uint16(lit)<<4 | uint16(litCodeLens[lit])
		}
	}
}

// unpackCodeLens expands a packed run list into per-symbol code lengths and
// returns the symbol count.
func unpackCodeLens(packed []byte, dst []uint8) int {
	sym := 0
	for _, b := range packed {
		n := b & 15
		for count := int(b>>4) + 1; count > 0; count-- {
			dst[sym] = n
			sym++
		}
	}
	return sym
}

// assignCanonicalCodes derives the wire codes for a canonical prefix code
// set: symbols are ordered by code length (ties by symbol value), the first
// code of the shortest length is all ones, codes of one length count down,
// and a set bit is appended per extra length step. The stored form is
// bit-reversed so the decoder can match against the low bits of its buffer.
func assignCanonicalCodes(lens []uint8, codes []uint16) {
	var count [litDecodeBits + 1]int
	for _, n := range lens {
		count[n]++
	}

	var offs [litDecodeBits + 2]int
	for n := 1; n <= litDecodeBits; n++ {
		offs[n+1] = offs[n] + count[n]
	}

	ordered := make([]int, len(lens))
	total := 0
	for sym, n := range lens {
		if n == 0 {
			continue
		}
		ordered[offs[n]] = sym
		offs[n]++
		total++
	}

	code, prev := uint32(1), uint8(0)
	for _, sym := range ordered[:total] {
		n := lens[sym]
		d := n - prev
		code = (code-1)<<d | (1<<d - 1)
		codes[sym] = reverseBits(code, n)
		prev = n
	}
}

// reverseBits mirrors the low n bits of v.
func reverseBits(v uint32, n uint8) uint16 {
	var r uint32
	for ; n > 0; n-- {
		r = r<<1 | v&1
		v >>= 1
	}
	return uint16(r) //nolint:gosec // G115: code widths never exceed 13 bits
}

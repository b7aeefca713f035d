package dcl

import "testing"

// Wire code values for the length and distance sets, as published in the
// PKWare DCL table dumps. The generator must reproduce them exactly.
func TestTables_KnownLengthCodes(t *testing.T) {
	wantCodes := [16]uint16{
		0x03, 0x05, 0x01, 0x06, 0x0A, 0x02, 0x0C, 0x14,
		0x04, 0x18, 0x08, 0x30, 0x10, 0x20, 0x40, 0x00,
	}
	wantLens := [16]uint8{2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 5, 6, 6, 6, 7, 7}

	if lenCodes != wantCodes {
		t.Fatalf("length codes mismatch:\n got %#v\nwant %#v", lenCodes, wantCodes)
	}
	if lenCodeLens != wantLens {
		t.Fatalf("length code widths mismatch:\n got %v\nwant %v", lenCodeLens, wantLens)
	}
}

func TestTables_KnownDistanceCodes(t *testing.T) {
	wantHead := []uint16{0x03, 0x0D, 0x05, 0x19, 0x09, 0x11, 0x01, 0x3E}
	wantHeadLens := []uint8{2, 4, 4, 5, 5, 5, 5, 6}

	for u, want := range wantHead {
		if distCodes[u] != want {
			t.Fatalf("distCodes[%d] = %#x, want %#x", u, distCodes[u], want)
		}
		if distCodeLens[u] != wantHeadLens[u] {
			t.Fatalf("distCodeLens[%d] = %d, want %d", u, distCodeLens[u], wantHeadLens[u])
		}
	}

	// The last code of a complete canonical set is all zeros at the longest
	// width.
	if distCodes[63] != 0 || distCodeLens[63] != 8 {
		t.Fatalf("distCodes[63] = %#x/%d, want 0x00/8", distCodes[63], distCodeLens[63])
	}
}

func TestTables_LengthSlotRanges(t *testing.T) {
	// Every length 2..519 belongs to exactly one slot, and the slot's base
	// plus extra bits covers it.
	for l := shortMatchLen; l <= eosLen; l++ {
		slot := lenSlotOf[l]
		lo := int(lenBase[slot])
		hi := lo + 1<<lenExtra[slot] - 1
		if l < lo || l > hi {
			t.Fatalf("length %d mapped to slot %d covering %d..%d", l, slot, lo, hi)
		}
	}
	if lenSlotOf[eosLen] != 15 {
		t.Fatalf("end marker slot = %d, want 15", lenSlotOf[eosLen])
	}
}

func TestTables_KraftComplete(t *testing.T) {
	kraft := func(lens []uint8) float64 {
		sum := 0.0
		for _, n := range lens {
			if n > 0 {
				sum += 1 / float64(int(1)<<n)
			}
		}
		return sum
	}

	if got := kraft(lenCodeLens[:]); got != 1.0 {
		t.Fatalf("length code Kraft sum = %v, want 1", got)
	}
	if got := kraft(distCodeLens[:]); got != 1.0 {
		t.Fatalf("distance code Kraft sum = %v, want 1", got)
	}
	if got := kraft(litCodeLens[:]); got > 1.0 {
		t.Fatalf("literal code oversubscribed: Kraft sum = %v", got)
	}
}

// Push each wire code through the matching decode table and expect the
// original symbol back.
func TestTables_DecodeInvertsEncode(t *testing.T) {
	for slot := range lenCodes {
		e := lenDecode[lenCodes[slot]&(1<<7-1)]
		if int(e>>3) != slot || e&7 != lenCodeLens[slot] {
			t.Fatalf("length slot %d decodes to %d/%d", slot, e>>3, e&7)
		}
	}
	for u := range distCodes {
		e := distDecode[distCodes[u]]
		if int(e>>4) != u || uint8(e&15) != distCodeLens[u] {
			t.Fatalf("distance %d decodes to %d/%d", u, e>>4, e&15)
		}
	}
	for lit := range litCodes {
		if litCodeLens[lit] == 0 {
			t.Fatalf("literal %d has no code", lit)
		}
		e := litDecode[litCodes[lit]]
		if int(e>>4) != lit || uint8(e&15) != litCodeLens[lit] {
			t.Fatalf("literal %d decodes to %d/%d", lit, e>>4, e&15)
		}
	}
}

// No code may be a prefix of another within its set, reading LSB-first.
func TestTables_PrefixFree(t *testing.T) {
	check := func(name string, codes []uint16, lens []uint8) {
		for a := range codes {
			for b := range codes {
				if a == b || lens[a] == 0 || lens[b] == 0 || lens[a] > lens[b] {
					continue
				}
				if codes[a] == codes[b]&(1<<lens[a]-1) {
					t.Fatalf("%s: code %d is a prefix of code %d", name, a, b)
				}
			}
		}
	}

	check("length", lenCodes[:], lenCodeLens[:])
	check("distance", distCodes[:], distCodeLens[:])
	check("literal", litCodes[:], litCodeLens[:])
}

// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

// compressDict is the compressor's sliding dictionary: a ring of the most
// recently emitted bytes plus the hash chains used for match search. The
// chain tables live next to the ring because every ring write also updates
// them. Arrays are sized for the largest dictionary; mask selects the
// configured power-of-two size.
type compressDict struct {
	data [maxDictSize]byte
	prev [maxDictSize]uint16
	head [hashSize]uint16

	size       int
	mask       int
	writeIndex int
	filled     int    // bytes in the ring, saturates at size
	writeHash  uint32 // rolling hash of the last bytes written
	primed     int    // bytes written before chains start (needs 3 of context)
}

func (d *compressDict) init(size int) {
	d.size = size
	d.mask = size - 1
	d.reset()
}

func (d *compressDict) reset() {
	d.writeIndex = 0
	d.filled = 0
	d.writeHash = 0
	d.primed = 0
	for i := range d.head {
		d.head[i] = noChain
	}
}

// at reads the ring modulo its size; negative offsets wrap backwards.
func (d *compressDict) at(i int) byte {
	return d.data[i&d.mask]
}

// distBack returns how many bytes behind the write cursor index i lies,
// counting the cursor position itself as size (the oldest slot once full).
func (d *compressDict) distBack(i int) int {
	db := d.writeIndex - i
	if db <= 0 {
		db += d.size
	}
	return db
}

// validRegion reports whether the n bytes ending at index i are contiguous
// history: fully written, and not straddling the seam between the newest and
// the oldest byte at the write cursor.
func (d *compressDict) validRegion(i, n int) bool {
	db := d.distBack((i - n + 1) & d.mask)
	return db <= d.filled && db >= n
}

// push appends one byte to the ring and, once three bytes of context exist,
// links its position into the hash chain for the trailing three bytes.
func (d *compressDict) push(b byte) {
	i := d.writeIndex
	d.data[i] = b
	d.writeHash = hashStep(d.writeHash, b)
	if d.primed >= 2 {
		h := d.writeHash
		d.prev[i] = d.head[h]
		d.head[h] = uint16(i) //nolint:gosec // G115: ring index bounded by dictionary size
	} else {
		d.prev[i] = noChain
		d.primed++
	}
	d.writeIndex = (i + 1) & d.mask
	if d.filled < d.size {
		d.filled++
	}
}

// copyMatch re-appends len bytes starting at ring index src. Overlapping
// copies are the point: the source trails the cursor, so bytes pushed here
// become valid source for the tail of the same copy.
func (d *compressDict) copyMatch(src, length int) {
	p := src & d.mask
	for ; length > 0; length-- {
		d.push(d.data[p])
		p = (p + 1) & d.mask
	}
}

// copyRun appends length copies of a single value.
func (d *compressDict) copyRun(value byte, length int) {
	for ; length > 0; length-- {
		d.push(value)
	}
}

// chainWalker iterates the candidate indices sharing one rolling hash,
// newest first. Stale links survive ring reuse, so the walk is bounded: it
// stops at a chain end, when a link points at itself, after the index order
// wraps twice, or after size steps.
type chainWalker struct {
	d     *compressDict
	next  int
	wraps int
	steps int
}

func (d *compressDict) walk(h uint32) chainWalker {
	return chainWalker{d: d, next: int(d.head[h])}
}

func (w *chainWalker) Next() (int, bool) {
	i := w.next
	if i == noChain || w.steps >= w.d.size {
		return 0, false
	}
	w.steps++

	n := int(w.d.prev[i])
	if n != noChain {
		if n >= i {
			w.wraps++
		}
		if n == i || w.wraps >= 2 {
			n = noChain
		}
	}
	w.next = n
	return i, true
}

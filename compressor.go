// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

const (
	// Worst-case code widths, used to price a deferred match.
	maxLenCodeBits  = 16 // flag + 7-bit slot code + 8 extra bits
	maxDistCodeBits = 14 // 8-bit upper code + 6 low bits

	// Above this input length the 9-bits-per-byte worst case no longer fits
	// the sizing arithmetic; MaxOutputBytes saturates.
	maxSizableInput = 1_908_874_349
)

// Compressor is an incremental implode encoder. It buffers up to two raw
// bytes (a match must reach three) or one live dictionary match between
// Update calls, so splitting the input at any point produces the same
// stream as a single call.
type Compressor struct {
	bw   bitWriter
	dict compressDict

	selector int

	// matchLen 0..2: pend holds raw bytes awaiting a match. 3 and up: a live
	// match at matchStart, matchDist behind the cursor. matchByte is the
	// repeated value while the absorbed bytes form a run, else -1.
	matchLen   int
	matchStart int
	matchDist  int
	matchByte  int
	matchHash  uint32
	pend       [2]byte

	wroteHeader bool
	finished    bool
}

// NewCompressor returns a compressor with the given dictionary size, which
// must be 1024, 2048 or 4096; the wire format can express no other size.
func NewCompressor(dictSize int) (*Compressor, error) {
	switch dictSize {
	case 1024, 2048, 4096:
	default:
		return nil, ErrDictionarySize
	}
	c := &Compressor{}
	c.init(dictSize)
	return c, nil
}

func (c *Compressor) init(dictSize int) {
	c.dict.init(dictSize)
	c.selector = selectorFor(dictSize)
	c.resetState()
}

// Reset returns the compressor to its initial state for a new stream,
// keeping the configured dictionary size and all allocations.
func (c *Compressor) Reset() {
	c.dict.reset()
	c.resetState()
}

func (c *Compressor) resetState() {
	c.bw = bitWriter{}
	c.matchLen = 0
	c.matchStart = 0
	c.matchDist = 0
	c.matchByte = -1
	c.matchHash = 0
	c.wroteHeader = false
	c.finished = false
}

// Update consumes all of input and writes the resulting compressed bytes
// into output, returning the number written. The first call emits the
// two-byte header; flush emits any pending state, the end-of-stream marker
// and zero padding to a byte boundary. Returns ErrOutputFull, with no state
// change, when output is smaller than MaxOutputBytes(len(input)); returns
// ErrClosed after a flushing call (use Reset to start a new stream).
func (c *Compressor) Update(input, output []byte, flush bool) (int, error) {
	if c.finished {
		return 0, ErrClosed
	}
	if len(output) < c.MaxOutputBytes(len(input)) {
		return 0, ErrOutputFull
	}
	c.bw.bind(output)
	c.run(input, flush)
	return c.bw.pos, nil
}

// Simulate returns the exact number of bytes Update would produce for this
// input and flush setting, without changing the compressor state. The run
// happens on a pooled snapshot of the dictionary.
func (c *Compressor) Simulate(input []byte, flush bool) (int, error) {
	if c.finished {
		return 0, ErrClosed
	}
	snap := compressorPool.Get().(*Compressor)
	*snap = *c
	snap.bw.simulate = true
	snap.bw.bind(nil)
	snap.run(input, flush)
	n := snap.bw.pos
	compressorPool.Put(snap)
	return n, nil
}

// MaxOutputBytes bounds the output of an Update consuming n input bytes
// from the current state: nine bits per byte in the worst case, plus header,
// end marker and padding, plus the carried bits and the deferred cost of a
// pending match. Saturates for inputs too large for the sizing arithmetic.
func (c *Compressor) MaxOutputBytes(n int) int {
	if n > maxSizableInput {
		return maxInt
	}
	bits := 9*int64(n) + 39 + int64(c.bw.nbits)
	if c.matchLen >= minMatchLen {
		bits += maxLenCodeBits + maxDistCodeBits
	}
	return clampInt((bits + 7) / 8)
}

// clampInt saturates a 64-bit byte count to the platform int.
func clampInt(v int64) int {
	if v > int64(maxInt) {
		return maxInt
	}
	return int(v)
}

func (c *Compressor) run(input []byte, flush bool) {
	if !c.wroteHeader {
		c.bw.put(litModeFixed, 8)
		c.bw.put(uint32(c.selector), 8)
		c.wroteHeader = true
	}
	for _, b := range input {
		c.feed(b)
	}
	if flush {
		c.finish()
	}
}

func (c *Compressor) feed(b byte) {
	switch c.matchLen {
	case 0:
		c.pend[0] = b
		c.matchByte = int(b)
		c.matchHash = uint32(b)
		c.matchLen = 1
	case 1:
		c.pend[1] = b
		c.matchHash = hashStep(c.matchHash, b)
		c.matchLen = 2
	case 2:
		c.searchInitial(b)
	default:
		c.extend(b)
	}
}

func (c *Compressor) finish() {
	switch {
	case c.matchLen >= minMatchLen:
		c.emitMatch()
	case c.matchLen >= 1:
		c.emitLiteral(c.pend[0])
		if c.matchLen == 2 {
			c.emitLiteral(c.pend[1])
		}
		c.matchLen = 0
		c.matchByte = -1
	}
	c.putLength(eosLen)
	c.bw.flushToByte()
	c.finished = true
}

// searchInitial holds three pending bytes (pend[0], pend[1], b) and walks
// the hash chain for a dictionary match. Without one, the oldest pending
// byte leaves as a literal and the search retries on the next input byte.
func (c *Compressor) searchInitial(b byte) {
	a0, a1 := c.pend[0], c.pend[1]
	h := hashStep(c.matchHash, b)

	for w := c.dict.walk(h); ; {
		i, ok := w.Next()
		if !ok {
			break
		}
		if !c.dict.validRegion(i, minMatchLen) {
			continue
		}
		if c.dict.at(i) != b || c.dict.at(i-1) != a1 || c.dict.at(i-2) != a0 {
			continue
		}
		c.matchStart = (i - 2) & c.dict.mask
		c.matchDist = c.dict.distBack(c.matchStart)
		c.matchLen = minMatchLen
		c.matchHash = h
		c.matchByte = -1
		if a0 == a1 && a1 == b {
			c.matchByte = int(b)
		}
		return
	}

	// A run continuing the byte just before the cursor becomes a distance-0
	// match even without a chain hit.
	if a0 == a1 && a1 == b && c.dict.filled > 0 && c.dict.at(c.dict.writeIndex-1) == b {
		c.matchStart = (c.dict.writeIndex - 1) & c.dict.mask
		c.matchDist = 1
		c.matchLen = minMatchLen
		c.matchHash = h
		c.matchByte = int(b)
		return
	}

	c.emitLiteral(a0)
	c.pend[0] = a1
	c.pend[1] = b
	c.matchHash = hashStep(uint32(a1), b)
}

// nextSrc returns the ring index holding the byte the pending match expects
// next; for matches overlapping the cursor the source cycles through the
// copy region, mirroring how the decompressor reconstructs them.
func (c *Compressor) nextSrc() int {
	return (c.matchStart + c.matchLen%c.matchDist) & c.dict.mask
}

func (c *Compressor) extend(b byte) {
	if c.dict.at(c.nextSrc()) == b {
		c.accept(b)
		return
	}
	c.backtrack(b)
}

func (c *Compressor) accept(b byte) {
	c.matchLen++
	c.matchHash = hashStep(c.matchHash, b)
	if int(b) != c.matchByte {
		c.matchByte = -1
	}
	if c.matchLen == maxMatchLen {
		c.emitMatch()
	}
}

// backtrack runs when the next input byte breaks the pending match. A run
// can often slide its source one byte back instead of giving up; otherwise
// the chain is re-searched for a position carrying the same content followed
// by the new byte. Failing both, the match is emitted and the new byte
// starts a fresh pending buffer.
func (c *Compressor) backtrack(b byte) {
	if c.matchByte >= 0 && int(b) == c.matchByte && c.matchDist < c.dict.filled &&
		c.dict.at(c.matchStart-1) == b {
		c.matchStart = (c.matchStart - 1) & c.dict.mask
		c.matchDist++
		c.accept(b)
		return
	}

	h := hashStep(c.matchHash, b)
	length := c.matchLen
	for w := c.dict.walk(h); ; {
		i, ok := w.Next()
		if !ok {
			break
		}
		if !c.dict.validRegion(i, length+1) || c.dict.at(i) != b {
			continue
		}
		if !c.contentMatches(i, length) {
			continue
		}
		c.matchStart = (i - length) & c.dict.mask
		c.matchDist = c.dict.distBack(c.matchStart)
		c.accept(b)
		return
	}

	c.emitMatch()
	c.pend[0] = b
	c.matchByte = int(b)
	c.matchHash = uint32(b)
	c.matchLen = 1
}

// contentMatches reports whether the length bytes ending just before ring
// index i equal the pending match content. Content bytes are read through
// the copy region so overlapping matches compare correctly.
func (c *Compressor) contentMatches(i, length int) bool {
	for k := length - 1; k >= 0; k-- {
		if c.dict.at(i-length+k) != c.dict.at(c.matchStart+k%c.matchDist) {
			return false
		}
	}
	return true
}

func (c *Compressor) emitLiteral(b byte) {
	c.bw.put(uint32(b)<<1, 9)
	c.dict.push(b)
}

func (c *Compressor) emitMatch() {
	c.putLength(c.matchLen)
	c.putDistance(c.matchDist - 1)
	if c.matchByte >= 0 {
		c.dict.copyRun(byte(c.matchByte), c.matchLen)
	} else {
		c.dict.copyMatch(c.matchStart, c.matchLen)
	}
	c.matchLen = 0
	c.matchByte = -1
}

func (c *Compressor) putLength(length int) {
	slot := lenSlotOf[length]
	c.bw.put(1, 1)
	c.bw.put(uint32(lenCodes[slot]), int(lenCodeLens[slot]))
	if e := lenExtra[slot]; e > 0 {
		c.bw.put(uint32(length)-uint32(lenBase[slot]), int(e))
	}
}

func (c *Compressor) putDistance(dist int) {
	upper := dist >> c.selector
	c.bw.put(uint32(distCodes[upper]), int(distCodeLens[upper]))
	c.bw.put(uint32(dist)&(1<<c.selector-1), c.selector)
}

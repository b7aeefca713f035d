// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

import (
	"errors"
	"io"
)

// Decompressor states. Copying is split from stateLength so a match
// interrupted by a full output buffer resumes mid-copy.
const (
	stateStart  = iota // header not yet read
	stateHeader        // between codes
	stateLength        // match length read, distance pending
	stateCopy          // distance read, bytes left to copy
	stateEnd           // end marker seen
)

const decompressChunk = 32 << 10

// Decompressor is an incremental implode decoder. It accepts both literal
// modes and all three dictionary sizes; the stream header picks them.
type Decompressor struct {
	br  bitReader
	win historyWindow

	state     int
	fixedLits bool
	selector  int

	copyLen  int // bytes still to copy for the current match
	copyDist int
	trailing int // input bits seen beyond the end marker

	stash []byte // input retained when the output buffer filled mid-update
}

// NewDecompressor returns a decompressor ready for the stream header.
func NewDecompressor() *Decompressor {
	return &Decompressor{}
}

// Reset returns the decompressor to its initial state for a new stream,
// keeping allocations.
func (d *Decompressor) Reset() {
	stash := d.stash[:0]
	*d = Decompressor{stash: stash}
}

// Update consumes all of input and writes decoded bytes into output,
// returning the number written. When output fills before the input is
// exhausted it returns ErrOutputFull with the remainder retained; retry
// with a drained or larger buffer (input may be nil then). With flush set,
// the stream must have reached its end marker (else ErrTruncated) with at
// most seven padding bits behind it (else ErrTrailingBytes). Without flush
// a partial code simply waits in the bit buffer for more input.
func (d *Decompressor) Update(input, output []byte, flush bool) (int, error) {
	return d.update(input, output, flush, false)
}

// Simulate returns the exact number of bytes Update would produce for this
// input and flush setting, without changing the decompressor state.
func (d *Decompressor) Simulate(input []byte, flush bool) (int, error) {
	snap := decompressorPool.Get().(*Decompressor)
	*snap = *d
	n, err := snap.update(input, nil, flush, true)
	decompressorPool.Put(snap)
	return n, err
}

// MaxOutputBytes bounds the bytes an Update consuming n input bytes could
// produce: the densest code spends 22 bits on a maximum-length match, plus
// whatever match copy is already pending. Saturates for inputs too large
// for the arithmetic.
func (d *Decompressor) MaxOutputBytes(n int) int {
	if n > maxSizableInput {
		return maxInt
	}
	bits := 8*int64(n) + int64(d.br.nbits) + 8*int64(len(d.stash))
	return clampInt((bits/22+1)*maxMatchLen + int64(d.copyLen))
}

func (d *Decompressor) update(input, output []byte, flush, simulate bool) (int, error) {
	src := input
	if len(d.stash) > 0 {
		src = append(d.stash, input...)
		d.stash = d.stash[:0]
	}

	written := 0
	pos := 0

loop:
	for {
		pos = d.br.refill(src, pos)

		switch d.state {
		case stateStart:
			if d.br.nbits < 16 {
				break loop
			}
			mode := d.br.peek(8)
			d.br.consume(8)
			sel := int(d.br.peek(8))
			d.br.consume(8)
			if mode > litModeCoded || sel < minSelector || sel > maxSelector {
				return written, ErrInvalidHeader
			}
			d.fixedLits = mode == litModeFixed
			d.selector = sel
			d.win.init(64 << sel)
			d.state = stateHeader

		case stateHeader:
			// The largest code group is flag + 7-bit length code + 8 extra
			// bits; anything shorter than that before the end marker means
			// the input ran dry mid-code.
			if d.br.nbits < 16 {
				break loop
			}
			if d.br.peek(1) == 1 {
				d.br.consume(1)
				e := lenDecode[d.br.peek(7)]
				d.br.consume(int(e & 7))
				slot := e >> 3
				length := int(lenBase[slot])
				if x := int(lenExtra[slot]); x > 0 {
					length += int(d.br.peek(x))
					d.br.consume(x)
				}
				if length == eosLen {
					d.state = stateEnd
					continue
				}
				d.copyLen = length
				d.state = stateLength
				continue
			}
			if written == len(output) && !simulate {
				return d.suspendFull(src, pos, written)
			}
			d.br.consume(1)
			var lit byte
			if d.fixedLits {
				lit = byte(d.br.peek(8))
				d.br.consume(8)
			} else {
				e := litDecode[d.br.peek(litDecodeBits)]
				if e == 0 {
					return written, ErrInvalidData
				}
				lit = byte(e >> 4)
				d.br.consume(int(e & 15))
			}
			d.win.push(lit)
			if !simulate {
				output[written] = lit
			}
			written++

		case stateLength:
			if d.br.nbits < 14 {
				break loop
			}
			e := distDecode[d.br.peek(8)]
			d.br.consume(int(e & 15))
			low := d.selector
			if d.copyLen == shortMatchLen {
				low = shortMatchLowBits
			}
			dist := int(e>>4)<<low | int(d.br.peek(low))
			d.br.consume(low)
			dist++
			if dist > d.win.filled {
				return written, ErrInvalidData
			}
			d.copyDist = dist
			d.state = stateCopy

		case stateCopy:
			for d.copyLen > 0 {
				if written == len(output) && !simulate {
					return d.suspendFull(src, pos, written)
				}
				b := d.win.at(d.win.writeIndex - d.copyDist)
				d.win.push(b)
				if !simulate {
					output[written] = b
				}
				written++
				d.copyLen--
			}
			d.state = stateHeader

		case stateEnd:
			d.trailing += 8 * (len(src) - pos)
			pos = len(src)
			break loop
		}
	}

	if flush {
		if d.state != stateEnd {
			return written, ErrTruncated
		}
		if d.br.nbits+d.trailing > 7 {
			return written, ErrTrailingBytes
		}
	}
	return written, nil
}

// suspendFull parks the unprocessed input so a later call can resume after
// the caller drains or grows its output buffer.
func (d *Decompressor) suspendFull(src []byte, pos, written int) (int, error) {
	d.stash = append(d.stash[:0], src[pos:]...)
	return written, ErrOutputFull
}

// Decompress decompresses a complete implode stream from src. opts may be
// nil. The stream must end with its length-519 marker and carry at most
// seven bits of padding behind it.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	d := acquireDecompressor()
	defer releaseDecompressor(d)

	out := make([]byte, 0, decompressChunk)
	buf := make([]byte, decompressChunk)
	in := src
	for {
		n, err := d.Update(in, buf, true)
		out = append(out, buf[:n]...)
		if opts.MaxOutputSize > 0 && len(out) > opts.MaxOutputSize {
			return nil, ErrOutputTooLarge
		}
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrOutputFull) {
			return nil, err
		}
		in = nil
	}
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own; use Reader for bounded-memory streaming.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

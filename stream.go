// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

import (
	"errors"
	"io"
)

const (
	writerChunk = 32 << 10
	readerChunk = 32 << 10
)

// Writer compresses bytes written to it and forwards the compressed stream
// to an underlying io.Writer. Close finalizes the stream; the underlying
// writer is left open.
type Writer struct {
	c      *Compressor
	w      io.Writer
	buf    []byte
	err    error
	closed bool
}

// NewWriter returns a compressing writer. opts may be nil (4 KiB dictionary).
func NewWriter(w io.Writer, opts *CompressOptions) (*Writer, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	size := opts.DictSize
	if size == 0 {
		size = maxDictSize
	}

	c, err := NewCompressor(size)
	if err != nil {
		return nil, err
	}
	return &Writer{c: c, w: w}, nil
}

// Write compresses p. The compressed bytes reach the underlying writer as
// the staging buffer fills; only Close guarantees a decodable stream.
func (zw *Writer) Write(p []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	if zw.closed {
		return 0, ErrClosed
	}

	total := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > writerChunk {
			chunk = chunk[:writerChunk]
		}
		if err := zw.push(chunk, false); err != nil {
			return total, err
		}
		total += len(chunk)
		p = p[len(chunk):]
	}
	return total, nil
}

// push drives one Update against the staging buffer and forwards its output.
func (zw *Writer) push(chunk []byte, flush bool) error {
	need := zw.c.MaxOutputBytes(len(chunk))
	if len(zw.buf) < need {
		zw.buf = make([]byte, need)
	}

	n, err := zw.c.Update(chunk, zw.buf, flush)
	if err != nil {
		zw.err = err
		return err
	}
	if n > 0 {
		if _, err := zw.w.Write(zw.buf[:n]); err != nil {
			zw.err = err
			return err
		}
	}
	return nil
}

// Close emits pending state, the end-of-stream marker and padding, then
// forwards them. It does not close the underlying writer. Closing an
// already-closed Writer is a no-op.
func (zw *Writer) Close() error {
	if zw.err != nil {
		return zw.err
	}
	if zw.closed {
		return nil
	}
	if err := zw.push(nil, true); err != nil {
		return err
	}
	zw.closed = true
	return nil
}

// Reset discards the Writer state and starts a new stream to w, keeping the
// dictionary size and allocations.
func (zw *Writer) Reset(w io.Writer) {
	zw.c.Reset()
	zw.w = w
	zw.err = nil
	zw.closed = false
}

// Reader decompresses bytes pulled from an underlying io.Reader. It stops
// at the stream's end marker and leaves any further bytes to the staging
// buffer granularity, like other compression readers that cannot seek.
type Reader struct {
	d   *Decompressor
	r   io.Reader
	in  []byte
	eof bool // underlying reader exhausted
	fin bool // end marker decoded
	err error
}

// NewReader returns a decompressing reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{d: NewDecompressor(), r: r, in: make([]byte, readerChunk)}
}

// Read fills p with decoded bytes, pulling compressed data from the
// underlying reader as needed. After the end marker it returns io.EOF; a
// source ending mid-stream surfaces ErrTruncated.
func (zr *Reader) Read(p []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if zr.fin {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	var src []byte // nil first: drain state buffered inside the decompressor
	for {
		n, err := zr.d.Update(src, p, false)
		if errors.Is(err, ErrOutputFull) {
			return n, nil // p is full; the rest is parked in the decompressor
		}
		if err != nil {
			zr.err = err
			return n, err
		}
		if zr.d.state == stateEnd {
			zr.fin = true
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		if n > 0 {
			return n, nil
		}

		if zr.eof {
			// Out of input with the stream unfinished; flushing surfaces the
			// truncation through the regular error path.
			_, err := zr.d.Update(nil, p, true)
			zr.err = err
			return 0, zr.err
		}

		m, rerr := zr.r.Read(zr.in)
		src = zr.in[:m]
		if rerr != nil {
			if rerr != io.EOF {
				zr.err = rerr
				return 0, rerr
			}
			zr.eof = true
		}
	}
}

// Reset discards the Reader state and starts reading a new stream from r,
// keeping allocations.
func (zr *Reader) Reset(r io.Reader) {
	zr.d.Reset()
	zr.r = r
	zr.eof = false
	zr.fin = false
	zr.err = nil
}

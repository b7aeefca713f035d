// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrOutputFull is returned when the caller's output buffer is too small.
	// The codec state is unchanged (compressor) or preserved at a code
	// boundary (decompressor); retry with more output capacity.
	ErrOutputFull = errors.New("output buffer too small")
	// ErrInvalidHeader is returned when the first two bytes of a compressed
	// stream carry an unknown literal mode or dictionary size selector.
	ErrInvalidHeader = errors.New("invalid stream header")
	// ErrInvalidData is returned when the decoder sees an impossible code or
	// a copy distance reaching before the start of the output.
	ErrInvalidData = errors.New("corrupt compressed data")
	// ErrTruncated is returned on flush when the stream ended before the
	// end-of-stream marker.
	ErrTruncated = errors.New("unexpected end of stream")
	// ErrTrailingBytes is returned on flush when data remains after the
	// end-of-stream marker.
	ErrTrailingBytes = errors.New("trailing bytes after end of stream")
	// ErrDictionarySize is returned when a requested dictionary size is not
	// one of 1024, 2048 or 4096; no other size is expressible on the wire.
	ErrDictionarySize = errors.New("dictionary size must be 1024, 2048 or 4096")
	// ErrClosed is returned when more data is pushed into a codec or stream
	// that has already been finalized.
	ErrClosed = errors.New("stream already finalized")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrOutputTooLarge is returned when decompression produces more than
	// MaxOutputSize bytes.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
)

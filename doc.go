// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

/*
Package dcl implements the PKWare Data Compression Library (DCL) "implode"
format: an LZ77 codec with a 1, 2 or 4 KiB sliding dictionary, fixed prefix
codes for match lengths and distances, and a bit stream packed LSB-first.
The stream ends with a length-519 end marker. Suitable for archives and
game/binary formats that store DCL-imploded blocks.

# Decompress

From a byte slice (options may be nil):

	out, err := dcl.Decompress(compressed, nil)

From an io.Reader:

	out, err := dcl.DecompressFromReader(r, nil)

Streaming, with a bounded memory footprint:

	zr := dcl.NewReader(r)
	_, err := io.Copy(dst, zr)

# Compress

One-shot (options may be nil; the default dictionary is 4 KiB):

	out, err := dcl.Compress(data, nil)
	out, err := dcl.Compress(data, &dcl.CompressOptions{DictSize: 1024})

Streaming:

	zw, err := dcl.NewWriter(w, nil)
	_, err = zw.Write(data)
	err = zw.Close() // finalizes the stream

# Incremental API

Compressor and Decompressor expose the raw incremental surface used by the
helpers above: Update consumes input and writes into a caller buffer,
Simulate predicts the exact output size without changing state, and Reset
reuses the allocation for a new stream. The compressor always writes fixed
8-bit literals; the decompressor additionally accepts the coded ASCII-biased
literal mode on read.
*/
package dcl

// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

// Compress compresses src into a complete implode stream. opts may be nil
// (uses the default 4 KiB dictionary).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	size := opts.DictSize
	if size == 0 {
		size = maxDictSize
	}
	if len(src) > maxSizableInput {
		return nil, ErrInputTooLarge
	}

	c, err := acquireCompressor(size)
	if err != nil {
		return nil, err
	}
	defer releaseCompressor(c)

	out := make([]byte, c.MaxOutputBytes(len(src)))
	n, err := c.Update(src, out, true)
	if err != nil {
		return nil, err
	}

	return out[:n:n], nil
}

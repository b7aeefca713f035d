// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/dcl

package dcl

// historyWindow is the decompressor's ring of recently produced bytes. It
// needs no hash chains; match copies address it purely by backward distance.
type historyWindow struct {
	data       [maxDictSize]byte
	mask       int
	size       int
	writeIndex int
	filled     int
}

func (h *historyWindow) init(size int) {
	h.size = size
	h.mask = size - 1
	h.writeIndex = 0
	h.filled = 0
}

func (h *historyWindow) at(i int) byte {
	return h.data[i&h.mask]
}

func (h *historyWindow) push(b byte) {
	h.data[h.writeIndex] = b
	h.writeIndex = (h.writeIndex + 1) & h.mask
	if h.filled < h.size {
		h.filled++
	}
}

// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bufio"
	"io"
)

// headerSize is the fixed wire prefix: one code length per byte value in
// raw symbol order, then the padding bit count of the final packed byte.
const headerSize = numSymbols + 1

type header struct {
	lens       [numSymbols]uint8
	ignoreBits uint8
}

// packedBits returns the total payload bit count implied by the histogram
// and the assigned code lengths.
func packedBits(hist *histogram, lens *[numSymbols]uint8) uint64 {
	var total uint64
	for i, n := range hist {
		total += n * uint64(lens[i])
	}
	return total
}

func (h *header) write(dst *bufio.Writer) error {
	if _, err := dst.Write(h.lens[:]); err != nil {
		return err
	}
	return dst.WriteByte(h.ignoreBits)
}

func (h *header) read(src io.Reader) error {
	var raw [headerSize]byte
	if _, err := io.ReadFull(src, raw[:]); err != nil {
		return ErrCorruptHeader
	}
	copy(h.lens[:], raw[:numSymbols])
	h.ignoreBits = raw[numSymbols]
	// Only values above 8 are rejected; 8 itself stays accepted, matching
	// every stream decoder shipped with this format so far.
	if h.ignoreBits > 8 {
		return ErrInvalidPadding
	}
	return nil
}

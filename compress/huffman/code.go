// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

const (
	numSymbols = 256

	// codeWidth is the accumulator width shared by the bit packer and the
	// decoder window.
	codeWidth = 64

	// maxCodeLen bounds assignable code lengths so that every code value
	// stays addressable inside the decoder's 63-bit window. Reaching even
	// 44 bits would take an input of several terabytes, so the cap only
	// ever rejects hand-crafted headers.
	maxCodeLen = codeWidth - 1
)

// huffCode is one canonical code: a right-justified value of exactly len
// bits. len 0 means the symbol is unused and has no code.
type huffCode struct {
	val uint64
	len uint8
}

// canonicalOrder returns the symbol indices sorted by (code length
// ascending, symbol index ascending) via a counting sort over the lengths.
// Unused symbols sort first.
func canonicalOrder(lens *[numSymbols]uint8) (perm [numSymbols]int) {
	var offset [numSymbols + 1]int
	for _, l := range lens {
		offset[int(l)+1]++
	}
	for i := 1; i < len(offset); i++ {
		offset[i] += offset[i-1]
	}
	for i, l := range lens {
		perm[offset[l]] = i
		offset[l]++
	}
	return perm
}

// canonicalCodes assigns canonical code values to the given lengths and
// returns the code table together with the canonical symbol order.
//
// It is pure and shared by both paths: on encode the lengths come from the
// tree build and are expected valid, on decode they come from an untrusted
// header and any assignment that does not form a complete prefix code is
// rejected with ErrCorruptLengths.
func canonicalCodes(lens *[numSymbols]uint8) (codes [numSymbols]huffCode, perm [numSymbols]int, err error) {
	for _, l := range lens {
		if l > maxCodeLen {
			return codes, perm, ErrCorruptLengths
		}
	}
	perm = canonicalOrder(lens)
	for i := range codes {
		codes[i].len = lens[i]
	}

	// Walk the canonical order: each code is the previous one incremented,
	// shifted up by the length difference. A value outgrowing its bit width
	// means the lengths oversubscribe the code space.
	codes[perm[0]].val = 0
	for i := 1; i < numSymbols; i++ {
		cur := &codes[perm[i]]
		prev := &codes[perm[i-1]]
		if prev.len == 0 {
			cur.val = 0
		} else {
			cur.val = (prev.val + 1) << (cur.len - prev.len)
		}
		if cur.val>>cur.len != 0 {
			return codes, perm, ErrCorruptLengths
		}
	}

	// Completeness: with two or more symbols in use the last canonical code
	// must be the all-ones pattern of its length; a lone used symbol must
	// have a one-bit code.
	last := codes[perm[numSymbols-1]]
	if codes[perm[numSymbols-2]].len != 0 && last.val != (uint64(1)<<last.len)-1 {
		return codes, perm, ErrCorruptLengths
	}
	if codes[perm[numSymbols-2]].len == 0 && last.len > 1 {
		return codes, perm, ErrCorruptLengths
	}
	return codes, perm, nil
}

// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bufio"
	"io"
)

const (
	// windowBits is the number of valid bits the decoder window can hold.
	// The top bit of the uint64 stays clear so left-aligned boundary values
	// always compare correctly.
	windowBits = codeWidth - 1

	// startInvalid marks byte patterns no assigned code matches.
	startInvalid = 0xFF
)

// decoder recovers symbols from the packed stream with precomputed
// per-length tables instead of walking a tree bit by bit.
//
// start maps the next 8 input bits to the minimal code length they can
// begin; for longer codes the guess is extended while the window still
// reaches past boundary[len], the left-aligned smallest code of the next
// greater present length. Once the length is known, the symbol is the
// window value's rank above the smallest code of that length, mapped back
// through the canonical order.
type decoder struct {
	perm [numSymbols]int // canonical order: position -> symbol
	rank [numSymbols]int // symbol -> canonical position

	smallestSym  [maxCodeLen + 1]int16
	smallestCode [maxCodeLen + 1]uint64
	boundary     [maxCodeLen + 1]uint64
	start        [numSymbols]uint8
	ignoreBits   uint8

	bits   uint64 // left-aligned window, top bit always clear
	bitLen int
	eof    bool
}

func newDecoder(codes *[numSymbols]huffCode, perm *[numSymbols]int, ignoreBits uint8) *decoder {
	d := &decoder{perm: *perm, ignoreBits: ignoreBits}
	for pos, sym := range d.perm {
		d.rank[sym] = pos
	}

	var maxLen uint8
	for _, c := range codes {
		if c.len > maxLen {
			maxLen = c.len
		}
	}

	first := d.perm[0]
	d.smallestSym[codes[first].len] = int16(first)
	d.smallestCode[codes[first].len] = codes[first].val
	for i := 1; i < numSymbols; i++ {
		sym := d.perm[i]
		curLen := codes[sym].len
		prevLen := codes[d.perm[i-1]].len
		if curLen != prevLen {
			d.smallestSym[curLen] = int16(sym)
			d.smallestCode[curLen] = codes[sym].val
			d.boundary[prevLen] = codes[sym].val << (windowBits - curLen)
		}
	}
	// Nothing decodes past the longest code.
	d.boundary[maxLen] = 1 << windowBits

	for i := range d.start {
		d.start[i] = startInvalid
	}
	for _, c := range codes {
		if c.len == 0 {
			continue
		}
		if c.len >= 8 {
			top := uint8(c.val >> (c.len - 8))
			if c.len < d.start[top] {
				d.start[top] = c.len
			}
		} else {
			// Short codes own every extension of their bit pattern.
			base := uint8(c.val << (8 - c.len))
			for ext := uint8(0); ext < 1<<(8-c.len); ext++ {
				if c.len < d.start[base|ext] {
					d.start[base|ext] = c.len
				}
			}
		}
	}
	return d
}

// refill shifts whole input bytes into the window while they fit.
func (d *decoder) refill(src *bufio.Reader) error {
	for !d.eof && d.bitLen+8 <= windowBits {
		b, err := src.ReadByte()
		if err == io.EOF {
			d.eof = true
			break
		}
		if err != nil {
			return err
		}
		d.bits |= uint64(b) << (windowBits - 8 - d.bitLen)
		d.bitLen += 8
	}
	d.bits &= 1<<windowBits - 1
	return nil
}

// run decodes symbols until the input is exhausted and only the declared
// padding remains in the window. A body whose real bit count disagrees
// with the declared padding simply decodes through the extra bits.
func (d *decoder) run(src *bufio.Reader, dst *bufio.Writer) error {
	if err := d.refill(src); err != nil {
		return err
	}
	for !d.eof || d.bitLen > int(d.ignoreBits) {
		curLen := int(d.start[d.bits>>(windowBits-8)])
		if curLen == startInvalid {
			return ErrCorruptStream
		}
		if curLen > 8 {
			for d.bits >= d.boundary[curLen] {
				curLen++
			}
		}

		rank := int64(d.bits>>(windowBits-curLen)) - int64(d.smallestCode[curLen])
		smallest := int(d.smallestSym[curLen])
		if rank < 0 || int64(smallest)+rank >= numSymbols {
			return ErrCorruptStream
		}
		pos := d.rank[smallest] + int(rank)
		if pos >= numSymbols {
			return ErrCorruptStream
		}
		if err := dst.WriteByte(byte(d.perm[pos])); err != nil {
			return err
		}

		d.bits <<= curLen
		d.bitLen -= curLen
		if err := d.refill(src); err != nil {
			return err
		}
	}
	return nil
}

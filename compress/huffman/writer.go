// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "bufio"

// bitPacker accumulates variable-length codes MSB-first in a 64-bit buffer
// and hands whole bytes to the underlying writer. bits is left-aligned:
// the oldest pending bit lives at bit 63.
type bitPacker struct {
	dst    *bufio.Writer
	bits   uint64
	bitLen int
}

func (p *bitPacker) writeCode(c huffCode) error {
	n := int(c.len)
	if p.bitLen+n > codeWidth {
		// Split the code: top bits fill the buffer to capacity, the rest
		// restart it after the flush.
		can := codeWidth - p.bitLen
		p.bits |= c.val >> (n - can)
		p.bitLen = codeWidth
		if err := p.flush(); err != nil {
			return err
		}
		p.bits = c.val << (codeWidth - (n - can))
		p.bitLen = n - can
		return nil
	}
	p.bits |= c.val << (codeWidth - p.bitLen - n)
	p.bitLen += n
	return nil
}

// flush drains the buffer a byte at a time, most significant first. After
// the last symbol the low bits of the final byte come out zero; those are
// exactly the padding bits declared in the header.
func (p *bitPacker) flush() error {
	for p.bitLen > 0 {
		if err := p.dst.WriteByte(byte(p.bits >> (codeWidth - 8))); err != nil {
			return err
		}
		p.bits <<= 8
		p.bitLen -= 8
	}
	p.bitLen = 0
	p.bits = 0
	return nil
}

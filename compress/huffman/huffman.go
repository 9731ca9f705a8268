// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a lossless byte-stream codec based on static,
// whole-stream canonical Huffman coding.
//
// The wire format is a fixed 257-byte header (one code length per byte
// value in raw symbol order, then the count of padding bits in the final
// byte) followed by the packed code bits, MSB-first. Because code values
// are assigned canonically, the header's lengths alone are enough to
// rebuild the full code table on the decode side.
package huffman

import (
	"bufio"
	"errors"
	"io"

	"github.com/Vovkaez/huffman/compress/huffman/internal/tree"
)

// Corruption errors reported by Decode. Encode reports ErrCorruptLengths
// only if code-length computation itself misbehaves, which a correct tree
// build never does.
var (
	ErrCorruptHeader  = errors.New("huffman: corrupted header")
	ErrInvalidPadding = errors.New("huffman: bad padding bit count")
	ErrCorruptLengths = errors.New("huffman: corrupted code lengths")
	ErrCorruptStream  = errors.New("huffman: corrupted stream")
)

// Encode compresses src into dst. The input is read twice: a first pass
// counts byte frequencies, then src is rewound with Seek(0, io.SeekStart)
// and re-read to emit codes. Callers holding a non-seekable source must
// buffer it before calling.
//
// On error the bytes already written to dst do not form a valid stream and
// should be discarded.
func Encode(src io.ReadSeeker, dst io.Writer) error {
	var hist histogram
	if err := hist.count(src); err != nil {
		return err
	}
	lens := tree.CodeLengths((*[numSymbols]uint64)(&hist))
	codes, _, err := canonicalCodes(&lens)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(dst)
	hdr := header{
		lens:       lens,
		ignoreBits: uint8((8 - packedBits(&hist, &lens)%8) % 8),
	}
	if err := hdr.write(bw); err != nil {
		return err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	p := bitPacker{dst: bw}
	var buf [32 << 10]byte
	for {
		n, rerr := src.Read(buf[:])
		for _, b := range buf[:n] {
			if err := p.writeCode(codes[b]); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	if err := p.flush(); err != nil {
		return err
	}
	return bw.Flush()
}

// Decode decompresses src into dst in a single forward pass. The header's
// code lengths are untrusted: any table that does not form a complete
// prefix code is rejected before the body is touched.
func Decode(src io.Reader, dst io.Writer) error {
	br := bufio.NewReader(src)
	var hdr header
	if err := hdr.read(br); err != nil {
		return err
	}
	codes, perm, err := canonicalCodes(&hdr.lens)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(dst)
	d := newDecoder(&codes, &perm, hdr.ignoreBits)
	if err := d.run(br, bw); err != nil {
		return err
	}
	return bw.Flush()
}

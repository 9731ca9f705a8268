// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "io"

// histogram counts how often each byte value occurs in the input.
type histogram [numSymbols]uint64

func (h *histogram) count(src io.Reader) error {
	var buf [32 << 10]byte
	for {
		n, err := src.Read(buf[:])
		for _, b := range buf[:n] {
			h[b]++
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

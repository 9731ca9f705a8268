// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree computes per-symbol Huffman code lengths from a byte
// histogram. Only the lengths leave this package: the tree itself is
// discarded as soon as the leaf depths are known, and canonical code
// values are assigned elsewhere from the lengths alone.
package tree

import "github.com/icza/huffman"

// CodeLengths builds the Huffman tree over every byte value with a nonzero
// count and returns the code bit length of each symbol. Unused symbols get
// length zero. A lone used symbol sits at depth zero but still gets a
// one-bit code, so each of its occurrences costs one bit on the wire.
//
// Equal weights are combined in an unspecified order, so symbols tied on
// frequency may swap lengths between runs; any resulting assignment yields
// the same total packed size and decodes unambiguously.
func CodeLengths(hist *[256]uint64) (lens [256]uint8) {
	leaves := make([]*huffman.Node, 0, len(hist))
	for i, n := range hist {
		if n > 0 {
			leaves = append(leaves, &huffman.Node{Value: huffman.ValueType(i), Count: int(n)})
		}
	}
	if len(leaves) == 0 {
		return lens
	}
	root := huffman.Build(leaves)

	type frame struct {
		n     *huffman.Node
		depth uint8
	}
	stack := make([]frame, 0, len(leaves))
	stack = append(stack, frame{root, 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.Left == nil {
			l := f.depth
			if l == 0 {
				l = 1
			}
			lens[f.n.Value] = l
			continue
		}
		stack = append(stack, frame{f.n.Left, f.depth + 1}, frame{f.n.Right, f.depth + 1})
	}
	return lens
}

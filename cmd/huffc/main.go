// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

// Command huffc compresses or decompresses a file with the canonical
// Huffman codec.
//
// Usage:
//
//	huffc -compress -input raw.bin -output packed.huf
//	huffc -decompress -input packed.huf -output raw.bin
package main

import (
	"flag"
	"log"
	"os"

	"github.com/Vovkaez/huffman/compress/huffman"
)

func main() {
	log.SetFlags(0)
	var (
		compress   = flag.Bool("compress", false, "compress the input file")
		decompress = flag.Bool("decompress", false, "decompress the input file")
		input      = flag.String("input", "", "input file path")
		output     = flag.String("output", "", "output file path")
	)
	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("no positional arguments expected, got %d", flag.NArg())
	}
	if *input == "" {
		log.Fatal("input is not specified")
	}
	if *output == "" {
		log.Fatal("output is not specified")
	}
	if *compress == *decompress {
		log.Fatal("choose one mode [-compress/-decompress]")
	}

	in, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	out, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}

	if *compress {
		err = huffman.Encode(in, out)
	} else {
		err = huffman.Decode(in, out)
	}
	if err != nil {
		out.Close()
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

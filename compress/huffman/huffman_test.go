// Copyright (c) 2024, Vovkaez.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func roundTrip(t *testing.T, src []byte) []byte {
	t.Helper()
	var enc bytes.Buffer
	if err := Encode(bytes.NewReader(src), &enc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var dec bytes.Buffer
	if err := Decode(bytes.NewReader(enc.Bytes()), &dec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(dec.Bytes(), src) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", dec.Len(), len(src))
	}
	return enc.Bytes()
}

func checkRatio(t *testing.T, src []byte, ratio float64) {
	t.Helper()
	enc := roundTrip(t, src)
	if got := float64(len(src)) / float64(len(enc)); got < ratio {
		t.Fatalf("compression ratio %.2f, want at least %.2f (%d -> %d bytes)", got, ratio, len(src), len(enc))
	}
}

func TestRoundTrip(t *testing.T) {
	vectors := [][]byte{
		[]byte("test message"),
		[]byte("a"),
		[]byte("ab"),
		[]byte("aab"),
		{0},
		{255},
		bytes.Repeat([]byte{0, 255}, 100),
	}
	for _, v := range vectors {
		roundTrip(t, v)
	}
}

func TestDistinctBytes(t *testing.T) {
	src := make([]byte, 5000)
	for i := range src {
		src[i] = byte(i)
	}
	roundTrip(t, src)
}

func TestEmptyInput(t *testing.T) {
	enc := roundTrip(t, nil)
	if len(enc) != headerSize {
		t.Fatalf("empty input encoded to %d bytes, want %d", len(enc), headerSize)
	}
}

func TestDecodeEmptyStream(t *testing.T) {
	var dst bytes.Buffer
	if err := Decode(bytes.NewReader(nil), &dst); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("got %v, want %v", err, ErrCorruptHeader)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	var dst bytes.Buffer
	if err := Decode(bytes.NewReader(make([]byte, 100)), &dst); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("got %v, want %v", err, ErrCorruptHeader)
	}
}

func TestSingleSymbol(t *testing.T) {
	src := bytes.Repeat([]byte{'a'}, 5000)
	enc := roundTrip(t, src)
	if len(enc)*5 > len(src) {
		t.Fatalf("%d bytes compressed to %d, want at most %d", len(src), len(enc), len(src)/5)
	}
}

func TestFibonacciDigits(t *testing.T) {
	var buf bytes.Buffer
	a, b := uint64(1), uint64(1)
	for i := 0; i < 100000; i++ {
		fmt.Fprintf(&buf, "%d ", a)
		a, b = b, a+b
	}
	checkRatio(t, buf.Bytes(), 2)
}

func TestPrimeDigits(t *testing.T) {
	const n = 100000
	notPrime := make([]bool, n)
	var buf bytes.Buffer
	for i := 2; i < n; i++ {
		if notPrime[i] {
			continue
		}
		fmt.Fprintf(&buf, "%d ", i)
		for j := i * i; j < n; j += i {
			notPrime[j] = true
		}
	}
	checkRatio(t, buf.Bytes(), 2)
}

func TestSmallAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	src := make([]byte, 100000)
	for i := range src {
		src[i] = byte('a' + rng.Intn(4))
	}
	checkRatio(t, src, 3.5)
}

func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		src := make([]byte, 1000)
		rng.Read(src)
		roundTrip(t, src)
	}
}

func TestLongCodes(t *testing.T) {
	// Exponentially skewed counts push the rare symbols past 8-bit codes,
	// exercising the decoder's length-extension path.
	var buf bytes.Buffer
	for i := 0; i < 16; i++ {
		buf.Write(bytes.Repeat([]byte{byte('a' + i)}, 1<<i))
	}
	roundTrip(t, buf.Bytes())
}

func TestDecodeRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	junk := make([]byte, 500)
	rng.Read(junk)
	var dst bytes.Buffer
	if err := Decode(bytes.NewReader(junk), &dst); err == nil {
		t.Fatal("decoding random bytes succeeded")
	}
}

func TestTamperedIgnoreBits(t *testing.T) {
	enc := roundTrip(t, []byte("test message"))
	enc[numSymbols] = 255
	var dst bytes.Buffer
	if err := Decode(bytes.NewReader(enc), &dst); !errors.Is(err, ErrInvalidPadding) {
		t.Fatalf("got %v, want %v", err, ErrInvalidPadding)
	}
}

func TestAcceptedPaddingBoundary(t *testing.T) {
	// 8 padding bits cannot occur in a byte, but the value is accepted;
	// the decoder just treats the whole final byte as padding.
	enc := roundTrip(t, []byte("test message"))
	enc[numSymbols] = 8
	var dst bytes.Buffer
	if err := Decode(bytes.NewReader(enc), &dst); err != nil {
		t.Fatalf("padding count 8 rejected: %v", err)
	}
}

func TestEncodedSizeBound(t *testing.T) {
	msg := []byte("test message")
	enc := roundTrip(t, msg)
	if len(enc) <= headerSize || len(enc) > headerSize+len(msg) {
		t.Fatalf("encoded size %d outside (%d, %d]", len(enc), headerSize, headerSize+len(msg))
	}
}

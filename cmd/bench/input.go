package main

import (
	"bytes"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

const (
	inputRandom    = "random"
	inputDNA       = "dna"
	inputRepeat    = "repeat"
	inputFibonacci = "fibonacci"
	inputFile      = "file"
)

var inputKinds = []string{inputRandom, inputDNA, inputRepeat, inputFibonacci, inputFile}

// input is a benchmark text. bytes is only set when every symbol fits in a
// byte, in which case the SA-IS baseline can run on it as well.
type input struct {
	name    string
	symbols []int
	bytes   []byte
	k       int
}

func newByteInput(name string, b []byte) *input {
	symbols := make([]int, len(b))
	for i, c := range b {
		symbols[i] = int(c)
	}
	return &input{name: name, symbols: symbols, bytes: b, k: 255}
}

func generateInput(kind string, n, alphabet int, seed int64, file string) (*input, error) {
	r := rand.New(rand.NewSource(seed))
	switch kind {
	case inputRandom:
		if alphabet > 255 {
			symbols := make([]int, n)
			for i := range symbols {
				symbols[i] = r.Intn(alphabet + 1)
			}
			return &input{name: kind, symbols: symbols, k: alphabet}, nil
		}
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(r.Intn(alphabet + 1))
		}
		return newByteInput(kind, b), nil
	case inputDNA:
		b := make([]byte, n)
		for i := range b {
			b[i] = "ACGT"[r.Intn(4)]
		}
		return newByteInput(kind, b), nil
	case inputRepeat:
		return newByteInput(kind, bytes.Repeat([]byte("a"), n)), nil
	case inputFibonacci:
		a, b := []byte("a"), []byte("ab")
		for len(b) < n {
			a, b = b, append(append([]byte{}, b...), a...)
		}
		return newByteInput(kind, b[:n]), nil
	case inputFile:
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "reading input file")
		}
		if n > 0 && n < len(b) {
			b = b[:n]
		}
		return newByteInput(file, b), nil
	}
	return nil, errors.Errorf("unknown input kind %q", kind)
}

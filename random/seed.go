// Package random supplies seeds for the toss RNG
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// SeedFrom reads a non-zero seed from src; an all-zero read maps to 1 since zero means "unset"
func SeedFrom(src io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(src, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return max(binary.LittleEndian.Uint64(b[:]), 1), nil
}

// NewSeed draws a seed from crypto/rand
func NewSeed() (uint64, error) {
	return SeedFrom(crand.Reader)
}

// Resolve keeps a configured seed and draws a fresh one when it is zero
func Resolve(seed uint64) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}

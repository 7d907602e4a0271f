// Package lib contains the core, reusable services for the jsum application.
package lib

import (
	"fmt"

	"jsum/internal/jsum/types"
)

// FNV-1a parameters per digest width. The 16-bit variant uses the low
// halves of the 32-bit parameters; FNV has no published 16-bit pair,
// and xor-folding a wider state was rejected because a folded digest
// cannot be used as the seed of the next fold.
const (
	basis64 uint64 = 0xcbf29ce484222325
	prime64 uint64 = 0x00000100000001b3
	basis32 uint64 = 0x811c9dc5
	prime32 uint64 = 0x01000193
	basis16 uint64 = 0x9dc5
	prime16 uint64 = 0x0193
)

// Basis returns the initial digest state for width w. It is also the
// digest of zero-length input. The width must be one of the supported
// values; Basis panics otherwise. The engine and the driver both
// validate the width before any digest state is created.
func Basis(w types.Width) uint64 {
	switch w {
	case types.Width16:
		return basis16
	case types.Width32:
		return basis32
	case types.Width64:
		return basis64
	}
	panic(fmt.Sprintf("unsupported digest width %d", w))
}

// Fold extends the digest seed over p and returns the new digest,
// computed as FNV-1a modulo 2^w. Folding a byte stream in chunks of
// any sizes yields the same digest as folding it in one call, so the
// emitted value never depends on chunk boundaries. Fold is pure; the
// only possible error is an unsupported width.
func Fold(w types.Width, seed uint64, p []byte) (uint64, error) {
	h := seed
	switch w {
	case types.Width64:
		for _, b := range p {
			h ^= uint64(b)
			h *= prime64
		}
	case types.Width32:
		for _, b := range p {
			h ^= uint64(b)
			h = (h * prime32) & 0xffffffff
		}
	case types.Width16:
		for _, b := range p {
			h ^= uint64(b)
			h = (h * prime16) & 0xffff
		}
	default:
		return 0, fmt.Errorf("unsupported digest width %d", w)
	}
	return h, nil
}

// Sum computes the digest of p from a fresh state. Like Basis, it
// panics on an unsupported width rather than returning a digest that
// belongs to no width.
func Sum(w types.Width, p []byte) uint64 {
	h, err := Fold(w, Basis(w), p)
	if err != nil {
		panic(err)
	}
	return h
}

// FormatDigest renders a digest as zero-padded lowercase hex, 4, 8 or
// 16 characters wide depending on the digest width.
func FormatDigest(w types.Width, digest uint64) string {
	return fmt.Sprintf("%0*x", w.HexDigits(), digest)
}

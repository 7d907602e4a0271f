package types

import "fmt"

// Mode selects how input bytes are grouped into hashing units and how
// each finished digest is rendered. It is decided once during argument
// parsing and stays fixed for the whole run.
type Mode int

const (
	// ModeWhole accumulates one digest over the entire input.
	ModeWhole Mode = iota
	// ModeBinary is ModeWhole with md5sum-style "digest *name" output.
	ModeBinary
	// ModeNamed is ModeWhole with "digest name" output.
	ModeNamed
	// ModeLine emits one digest per non-empty text line.
	ModeLine
	// ModeLineEcho is ModeLine but also echoes the hashed text.
	ModeLineEcho
	// ModeSubBlock emits one digest per 4096-byte block of the input.
	ModeSubBlock
	// ModeRolling carries the digest across chunks as the seed of each
	// fold and emits a single digest per input.
	ModeRolling
)

func (m Mode) String() string {
	switch m {
	case ModeWhole:
		return "whole"
	case ModeBinary:
		return "binary"
	case ModeNamed:
		return "named"
	case ModeLine:
		return "line"
	case ModeLineEcho:
		return "line-echo"
	case ModeSubBlock:
		return "sub-block"
	case ModeRolling:
		return "rolling"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Width is the digest width in bits.
type Width int

const (
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Valid reports whether w is one of the supported digest widths.
func (w Width) Valid() bool {
	return w == Width16 || w == Width32 || w == Width64
}

// HexDigits returns the number of hex characters a digest of this
// width renders to (4, 8 or 16).
func (w Width) HexDigits() int {
	return int(w) / 4
}

// FoldFunc extends a digest over p, starting from seed, and returns
// the new digest. Implementations must be pure and deterministic,
// accept len(p) == 0 (returning seed unchanged), and guarantee that
// folding successive chunks equals one fold over their concatenation.
type FoldFunc func(w Width, seed uint64, p []byte) (uint64, error)

// Config carries the per-run settings through the driver and the
// engine. There is no mutable global state; one Config value is built
// during flag parsing and threaded everywhere.
type Config struct {
	Mode  Mode
	Width Width

	// ChunkSize is the capacity of the shared read buffer. Zero means
	// the default (32768 bytes).
	ChunkSize int

	// Fold overrides the digest primitive. Nil means the built-in
	// FNV-1a fold.
	Fold FoldFunc
}

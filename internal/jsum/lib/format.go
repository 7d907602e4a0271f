package lib

import (
	"fmt"
	"io"

	"jsum/internal/jsum/types"
)

// Formatter renders finished digests to the result stream in the
// record format the active mode dictates.
type Formatter struct {
	w    io.Writer
	mode types.Mode
	wd   types.Width
}

// NewFormatter returns a Formatter writing records for cfg to w.
func NewFormatter(cfg types.Config, w io.Writer) *Formatter {
	return &Formatter{w: w, mode: cfg.Mode, wd: cfg.Width}
}

// File writes the once-per-input record: the bare digest, or the
// digest followed by the display name in binary/named style.
func (f *Formatter) File(digest uint64, name string) error {
	hex := FormatDigest(f.wd, digest)
	var err error
	switch f.mode {
	case types.ModeBinary:
		_, err = fmt.Fprintf(f.w, "%s *%s\n", hex, name)
	case types.ModeNamed:
		_, err = fmt.Fprintf(f.w, "%s %s\n", hex, name)
	default:
		_, err = fmt.Fprintf(f.w, "%s\n", hex)
	}
	return err
}

// Line writes the per-line record, echoing the stripped line text in
// single quotes when the mode asks for it.
func (f *Formatter) Line(digest uint64, line []byte) error {
	hex := FormatDigest(f.wd, digest)
	var err error
	if f.mode == types.ModeLineEcho {
		_, err = fmt.Fprintf(f.w, "%s '%s'\n", hex, line)
	} else {
		_, err = fmt.Fprintf(f.w, "%s\n", hex)
	}
	return err
}

// Block writes the per-sub-block record.
func (f *Formatter) Block(digest uint64) error {
	_, err := fmt.Fprintf(f.w, "%s\n", FormatDigest(f.wd, digest))
	return err
}

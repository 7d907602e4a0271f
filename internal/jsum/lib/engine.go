package lib

import (
	"fmt"
	"io"

	"jsum/internal/jsum/types"
)

// Engine drives one input at a time through the chunk reader, the
// digest primitive and the formatter according to the configured
// mode. The scratch buffer is allocated once per Engine (one per run)
// and shared by every input; its contents are undefined after each
// read.
type Engine struct {
	cfg  types.Config
	fold types.FoldFunc
	form *Formatter
	buf  []byte
}

// NewEngine returns an Engine writing digest records to out.
func NewEngine(cfg types.Config, out io.Writer) *Engine {
	size := cfg.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	if cfg.Mode == types.ModeSubBlock && size%SubBlockSize != 0 {
		// Sub-block partitions must land on absolute 4096-byte
		// offsets, which requires full chunks to hold a whole number
		// of sub-blocks.
		size += SubBlockSize - size%SubBlockSize
	}
	fold := cfg.Fold
	if fold == nil {
		fold = Fold
	}
	return &Engine{
		cfg:  cfg,
		fold: fold,
		form: NewFormatter(cfg, out),
		buf:  make([]byte, size),
	}
}

// Process drains r and emits digest records for it under the display
// name. On a read or hash fault it stops immediately, emits nothing
// for the unit in progress, and returns an error classified as
// ErrRead or ErrHash. A fault never affects other inputs; the caller
// decides whether to continue with the next one.
func (e *Engine) Process(name string, r io.Reader) error {
	if !e.cfg.Width.Valid() {
		return fmt.Errorf("unsupported digest width %d", e.cfg.Width)
	}
	switch e.cfg.Mode {
	case types.ModeWhole, types.ModeBinary, types.ModeNamed, types.ModeRolling:
		return e.processWhole(name, r)
	case types.ModeLine, types.ModeLineEcho:
		return e.processLines(r)
	case types.ModeSubBlock:
		return e.processSubBlocks(r)
	}
	return fmt.Errorf("unhandled mode %v", e.cfg.Mode)
}

// processWhole folds every chunk into a single digest and emits it
// once at EOF. The running digest seeds each fold, so the result is
// a function of the byte stream alone: feeding the same bytes in any
// chunk sizes produces the same digest. Rolling mode relies on that
// invariance; whole, binary and named modes differ only in the
// record format. An input with no bytes at all still emits the
// empty-input digest.
func (e *Engine) processWhole(name string, r io.Reader) error {
	cr := NewChunkReader(r, e.buf)
	digest := Basis(e.cfg.Width)
	for {
		chunk, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		digest, err = e.fold(e.cfg.Width, digest, chunk)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHash, err)
		}
	}
	return e.form.File(digest, name)
}

// processLines hashes each non-empty stripped line from a fresh
// digest state and emits its record immediately. A fault on one line
// abandons the remaining lines of this input.
func (e *Engine) processLines(r io.Reader) error {
	lr := NewLineReader(r, len(e.buf))
	for {
		line, err := lr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		digest, err := e.fold(e.cfg.Width, Basis(e.cfg.Width), line)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHash, err)
		}
		if err := e.form.Line(digest, line); err != nil {
			return err
		}
	}
}

// processSubBlocks partitions every chunk into consecutive
// SubBlockSize pieces (the final one may be short), hashing each from
// a fresh digest state and emitting it immediately. Chunks are always
// full except the last, so the pieces land on absolute 4096-byte
// offsets within the input.
func (e *Engine) processSubBlocks(r io.Reader) error {
	cr := NewChunkReader(r, e.buf)
	for {
		chunk, err := cr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		for len(chunk) > 0 {
			n := SubBlockSize
			if len(chunk) < n {
				n = len(chunk)
			}
			digest, err := e.fold(e.cfg.Width, Basis(e.cfg.Width), chunk[:n])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrHash, err)
			}
			if err := e.form.Block(digest); err != nil {
				return err
			}
			chunk = chunk[n:]
		}
	}
}

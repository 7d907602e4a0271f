package lib

import (
	"bufio"
	"fmt"
	"io"
)

const (
	// DefaultChunkSize is the capacity of the shared read buffer.
	DefaultChunkSize = 32768

	// SubBlockSize is the fixed partition size used by sub-block mode.
	SubBlockSize = 4096
)

// ChunkReader pulls fixed-size chunks from a stream into a
// caller-owned scratch buffer. The buffer is reused for every read:
// a returned chunk aliases it and is only valid until the next call
// to Next.
//
// Every chunk except the last is exactly len(buf) bytes. Filling the
// buffer completely before returning keeps sub-block partitions on
// absolute 4096-byte offsets regardless of how the underlying reader
// fragments its reads.
type ChunkReader struct {
	r   io.Reader
	buf []byte
}

// NewChunkReader returns a ChunkReader reading into buf, which must
// be non-empty.
func NewChunkReader(r io.Reader, buf []byte) *ChunkReader {
	return &ChunkReader{r: r, buf: buf}
}

// Next returns the next chunk of the stream. It returns io.EOF once
// the stream is exhausted with no bytes left over; a short final
// chunk is returned with a nil error and the EOF is reported on the
// following call. Any other failure is wrapped as ErrRead, distinct
// from clean end of stream.
func (cr *ChunkReader) Next() ([]byte, error) {
	n, err := io.ReadFull(cr.r, cr.buf)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		// Short final chunk; the next ReadFull yields a clean EOF.
		return cr.buf[:n], nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return cr.buf[:n], nil
}

// LineReader yields text lines with their terminators stripped. Both
// "\n" and "\r\n" terminate a line and strip to the same content, so
// the two styles hash identically. A bare "\r" is ordinary line
// content. Lines that are empty after stripping are skipped entirely.
//
// A read fault mid-line must not yield the interrupted line: the
// fault is surfaced first and the buffered partial data is dropped.
// bufio.Scanner cannot provide that (it tokenizes everything read so
// far as a final line on any error), so lines come from a plain
// bufio.Reader instead.
type LineReader struct {
	br  *bufio.Reader
	eof bool
}

// NewLineReader returns a LineReader over r buffering up to size
// bytes. Lines longer than the buffer are a read fault, not a silent
// split.
func NewLineReader(r io.Reader, size int) *LineReader {
	return &LineReader{br: bufio.NewReaderSize(r, size)}
}

// Next returns the next non-empty stripped line, io.EOF at end of
// stream, or an ErrRead-wrapped error on an I/O fault or an
// over-long line. The returned slice aliases the reader's buffer and
// is only valid until the next call.
func (lr *LineReader) Next() ([]byte, error) {
	for !lr.eof {
		line, err := lr.br.ReadSlice('\n')
		switch {
		case err == nil:
			// Terminated line.
		case err == io.EOF:
			// Clean end of stream; a trailing unterminated line is
			// still a line.
			lr.eof = true
		case err == bufio.ErrBufferFull:
			return nil, fmt.Errorf("%w: line exceeds %d bytes", ErrRead, lr.br.Size())
		default:
			// Mid-line fault. The bytes buffered for the interrupted
			// line are dropped; the unit in progress emits nothing.
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		line = stripTerminator(line)
		if len(line) > 0 {
			return line, nil
		}
	}
	return nil, io.EOF
}

// stripTerminator removes a trailing "\n" or "\r\n". A "\r" without a
// following "\n" is left alone.
func stripTerminator(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

// 14 Oct 2026

// Package lines hands back the lines of a sequence file, one at a time.
// Plain files are memory mapped and gzip files are decompressed on the fly.
// Callers should not care which one they got.
package lines

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// MaxLine is the longest line we will accept from a stream. Unwrapped
// genomes give very long lines, so this is big. Mapped files have no limit.
const MaxLine = 1 << 30

const initBuf = 64 * 1024

// Source gives lines from a file or any reader. Use it like a bufio.Scanner.
type Source struct {
	scnr    *bufio.Scanner // nil if we are reading from a mapping
	mapped  []byte         // whole file, if mapped
	pos     int            // next unread byte in mapped
	line    []byte
	closers []func() error // called in order by Close
	err     error
}

// New returns a Source reading from r. Closing the Source does not
// close r.
func New(r io.Reader) *Source {
	scnr := bufio.NewScanner(r)
	scnr.Buffer(make([]byte, 0, initBuf), MaxLine)
	return &Source{scnr: scnr}
}

// fromBytes returns a Source that walks over b without copying.
func fromBytes(b []byte) *Source {
	return &Source{mapped: b}
}

// dropCR removes a trailing carriage return, so DOS files look
// like everything else.
func dropCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}

// Scan moves to the next line. It returns false at the end of input
// or on error. Check Err afterwards.
func (s *Source) Scan() bool {
	if s.scnr != nil {
		if !s.scnr.Scan() {
			s.err = s.scnr.Err()
			return false
		}
		s.line = s.scnr.Bytes()
		return true
	}
	if s.pos >= len(s.mapped) {
		return false
	}
	rest := s.mapped[s.pos:]
	if ndx := bytes.IndexByte(rest, '\n'); ndx == -1 {
		s.line = rest //           last line, no newline
		s.pos = len(s.mapped)
	} else {
		s.line = rest[:ndx]
		s.pos += ndx + 1
	}
	s.line = dropCR(s.line)
	return true
}

// Bytes returns the current line without its line terminator. The
// slice may be overwritten by the next call to Scan.
func (s *Source) Bytes() []byte { return s.line }

// Err returns the first read error, not counting io.EOF.
func (s *Source) Err() error { return s.err }

// Close releases whatever is underneath the Source: the mapping,
// decompressor and file. It is safe to call more than once.
func (s *Source) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	s.mapped = nil
	return errors.Join(errs...)
}

// brokenio is a wrapper around an io.ReadCloser which breaks on purpose.
// Typical use: you have a file pointer or a reader from a compressed
// source. You write
//	reader = brokenio.NewReader(reader)
// and everything works as before, until the reader has handed out
// a given number of bytes. After that, every Read fails.
// It lets us check that read errors get from the bottom of a stack
// of readers up to the caller, rather than looking like a short file.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what Read returns once the reader has broken.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// BrknRdrClsr wraps a reader. By default it never fails.
type BrknRdrClsr struct {
	rdr_orig  io.ReadCloser // Wrapped reader
	failAfter int           // fail once this many bytes are through, -1 never
	zeroFile  bool          // first read gives io.EOF, like an empty file
	nCalled   int
	nByte     int
}

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdr_orig: rIn, failAfter: -1}
}

// SetFailAfter makes the reader fail after n bytes. A negative n
// means never fail.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetZeroFile makes the reader pretend the file is empty.
func (r *BrknRdrClsr) SetZeroFile(z bool) { r.zeroFile = z }

// Read passes reads through and counts the bytes. Once more than
// failAfter bytes would have been returned, we return what fits
// and ErrBroken.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.zeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	if r.failAfter >= 0 && r.nByte >= r.failAfter && err == nil {
		err = ErrBroken
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdr_orig.Close()
}

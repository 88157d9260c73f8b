package lines

import (
	"compress/gzip"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Open opens a file for reading lines. If gz is set, the contents are
// gzip decompressed. Otherwise the file is mapped into memory.
func Open(fname string, gz bool) (*Source, error) {
	if gz {
		return openGz(fname)
	}
	return openMapped(fname)
}

// openGz wraps the file in a decompressor. Close shuts the
// decompressor first, then the file.
func openGz(fname string) (*Source, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	s := New(zrdr)
	s.closers = []func() error{zrdr.Close, fp.Close}
	return s, nil
}

// openMapped maps the whole file read-only. One cannot map a zero
// length file, so we just give back a Source with no lines.
func openMapped(fname string) (*Source, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.Size() == 0 {
		s := fromBytes(nil)
		s.closers = []func() error{fp.Close}
		return s, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	s := fromBytes(mm)
	s.closers = []func() error{mm.Unmap, fp.Close}
	return s, nil
}

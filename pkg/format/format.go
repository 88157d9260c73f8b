// 14 Oct 2026

// Package format decides what kind of sequence file we have, from its
// name, and sends it to the right counter.
// All the knowledge about file name suffixes is in this file. To add a
// format, add a Kind, its suffixes and a counter.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrew-torda/seqcount/pkg/count"
	"github.com/andrew-torda/seqcount/pkg/lines"
)

// Kind is the format of a file.
type Kind byte

const (
	Unknown Kind = iota
	Fasta
	Fastq
)

func (k Kind) String() string {
	switch k {
	case Fasta:
		return "fasta"
	case Fastq:
		return "fastq"
	}
	return "unknown"
}

// GzSuffix marks a compressed file.
const GzSuffix = ".gz"

// kinds lists suffixes in the order they are checked. Names are case
// sensitive, so "x.FA" is not fasta.
var kinds = []struct {
	kind   Kind
	sfx    []string
	cntFun count.Func
}{
	{Fastq, []string{".fastq", ".fq"}, count.Fastq},
	{Fasta, []string{".fasta", ".fa"}, count.Fasta},
}

// ErrUnknownFormat is returned for files whose name we do not recognise.
var ErrUnknownFormat = errors.New("not a recognized format")

// IsCompressed says if a file should be gzip decompressed.
func IsCompressed(fname string) bool { return strings.HasSuffix(fname, GzSuffix) }

// Classify looks at the end of a file name. Each format suffix may be
// followed by .gz.
func Classify(fname string) Kind {
	fname = strings.TrimSuffix(fname, GzSuffix)
	for _, k := range kinds {
		for _, sfx := range k.sfx {
			if strings.HasSuffix(fname, sfx) {
				return k.kind
			}
		}
	}
	return Unknown
}

// Counter returns the counting function for a kind of file.
// ok is false for Unknown.
func Counter(k Kind) (f count.Func, ok bool) {
	for _, kk := range kinds {
		if kk.kind == k {
			return kk.cntFun, true
		}
	}
	return nil, false
}

// CountFile classifies fname, opens it and counts it. The file is
// closed before we return. Files of unknown format are not opened.
func CountFile(fname string) (count.Result, error) {
	cntFun, ok := Counter(Classify(fname))
	if !ok {
		return count.Result{}, fmt.Errorf("%s: %w", fname, ErrUnknownFormat)
	}
	src, err := lines.Open(fname, IsCompressed(fname))
	if err != nil {
		return count.Result{}, err
	}
	r, err := cntFun(src)
	if cerr := src.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", fname, cerr)
	}
	if err != nil {
		return count.Result{}, fmt.Errorf("reading %s: %w", fname, err)
	}
	r.Fname = fname
	return r, nil
}

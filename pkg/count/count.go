// 14 Oct 2026

// Package count counts sequences and residues in fasta and fastq files.
// It does not check that the files are sensible. It counts header lines
// and the lengths of the lines that hold residues.
package count

import (
	"bytes"
	"fmt"
)

// Lines is what a counter reads from. A *bufio.Scanner or a
// *lines.Source will do.
type Lines interface {
	Scan() bool
	Bytes() []byte
	Err() error
}

// Result is what we found in one file.
type Result struct {
	Fname string // name of the file, just for reporting
	NSeq  int64  // number of sequences
	NRes  int64  // total number of residues, summed over sequences
}

// String gives a one line summary, mostly for debugging.
func (r Result) String() string {
	return fmt.Sprintf("%s: %d seqs %d residues", r.Fname, r.NSeq, r.NRes)
}

// Func is the signature shared by the fasta and fastq counters.
type Func func(lns Lines) (Result, error)

// asciiSpace is what is trimmed from each end of a line. Bytes outside
// ASCII are residues, even if they spell a unicode space.
const asciiSpace = " \t\n\v\f\r"

// nRes is the number of residues on a line. White space at either end
// does not count.
func nRes(line []byte) int64 { return int64(len(bytes.Trim(line, asciiSpace))) }

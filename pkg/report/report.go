// 14 Oct 2026

// Package report writes out the counts for each file, either to the
// terminal or to a summary file that grows over a run.
package report

import (
	"fmt"
	"io"

	"github.com/andrew-torda/seqcount/pkg/count"
)

// Sink takes results, one file at a time, in the order files were
// processed.
type Sink interface {
	Report(r count.Result) error
}

// Block is the text written for one file. The same text goes to the
// terminal and to the summary file.
func Block(r count.Result) string {
	return fmt.Sprintf("Summary for: %s\nTotal sequences found: %d\nTotal residues found: %d\n\n",
		r.Fname, r.NSeq, r.NRes)
}

// Console writes blocks to a writer, normally standard output.
type Console struct {
	W io.Writer
}

func (c Console) Report(r count.Result) error {
	_, err := io.WriteString(c.W, Block(r))
	return err
}

// Warnf writes a warning. It does not return an error, since there is
// nothing sensible to do if we cannot write a warning.
func Warnf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "WARNING: "+format+"\n", a...)
}

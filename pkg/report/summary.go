package report

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seqcount/pkg/count"
)

// SummaryFname is where the summary goes, in the current directory.
const SummaryFname = "summary.txt"

// SummaryWriter owns the summary file for one run. The first result
// overwrites whatever was there from an earlier run. Later results are
// appended. Nothing touches the file until there is a result, so a run
// where every file is skipped leaves an old summary alone.
type SummaryWriter struct {
	fname   string
	written bool // has this run written anything yet ?
}

// NewSummaryWriter sets up, but does not create, the summary file.
func NewSummaryWriter(fname string) *SummaryWriter {
	return &SummaryWriter{fname: fname}
}

// wrt opens the file with the given flags, writes one block and closes.
func (sw *SummaryWriter) wrt(r count.Result, flag int) error {
	fp, err := os.OpenFile(sw.fname, flag|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("summary file: %w", err)
	}
	if _, err := io.WriteString(fp, Block(r)); err != nil {
		fp.Close()
		return fmt.Errorf("writing summary %s: %w", sw.fname, err)
	}
	return fp.Close()
}

// ResetAndWrite truncates the summary file and writes r to it.
func (sw *SummaryWriter) ResetAndWrite(r count.Result) error {
	if err := sw.wrt(r, os.O_TRUNC); err != nil {
		return err
	}
	sw.written = true
	return nil
}

// Append adds r to the end of the summary file.
func (sw *SummaryWriter) Append(r count.Result) error {
	return sw.wrt(r, os.O_APPEND)
}

// Report resets the file for the first result of a run and appends
// after that.
func (sw *SummaryWriter) Report(r count.Result) error {
	if !sw.written {
		return sw.ResetAndWrite(r)
	}
	return sw.Append(r)
}

// 14 Oct 2026
// For each file we are given, count the sequences and residues and
// either print the totals or add them to a summary file.

package seqcount

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/seqcount/pkg/count"
	"github.com/andrew-torda/seqcount/pkg/format"
	"github.com/andrew-torda/seqcount/pkg/plot"
	"github.com/andrew-torda/seqcount/pkg/report"
	. "github.com/andrew-torda/seqcount/pkg/seq/common"
)

// CmdArgs is what the command line gives us.
type CmdArgs struct {
	Fnames      []string  // files to look at, in order
	Summary     bool      // write to the summary file, not stdout
	SummaryName string    // summary file name, report.SummaryFname if empty
	PlotFname   string    // if set, draw a png here
	Time        bool      // print out run time
	Stdout      io.Writer // os.Stdout if nil
	Stderr      io.Writer // os.Stderr if nil
}

func (args *CmdArgs) setDefaults() {
	if args.SummaryName == "" {
		args.SummaryName = report.SummaryFname
	}
	if args.Stdout == nil {
		args.Stdout = os.Stdout
	}
	if args.Stderr == nil {
		args.Stderr = os.Stderr
	}
}

// isFile is true for regular files. Directories and things that are
// not there do not count.
func isFile(fname string) bool {
	fi, err := os.Stat(fname)
	return err == nil && fi.Mode().IsRegular()
}

// oneFile counts one file. If it is not usable, we print a warning and
// return false.
func oneFile(fname string, warn io.Writer) (count.Result, bool) {
	if !isFile(fname) {
		report.Warnf(warn, "%s does not exist!", fname)
		return count.Result{}, false
	}
	r, err := format.CountFile(fname)
	switch {
	case errors.Is(err, format.ErrUnknownFormat):
		report.Warnf(warn, "%s is not a recognized format!", fname)
		return r, false
	case err != nil:
		report.Warnf(warn, "%v", err)
		return r, false
	}
	return r, true
}

// Mymain goes over the files in order. Files that are missing, have a
// name we do not know or cannot be read are skipped with a warning.
// They do not count as the first file of the run, so they do not
// reset the summary file.
// With no files, we return at once and touch nothing.
func Mymain(args CmdArgs) int {
	if len(args.Fnames) == 0 {
		return ExitUsageError
	}
	args.setDefaults()
	if args.Time {
		startTime := time.Now()
		defer func() {
			fmt.Fprintln(args.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}()
	}

	var sink report.Sink = report.Console{W: args.Stdout}
	if args.Summary {
		sink = report.NewSummaryWriter(args.SummaryName)
	}
	var tly report.Tally
	for _, fname := range args.Fnames {
		r, ok := oneFile(fname, args.Stderr)
		if !ok {
			continue
		}
		if err := sink.Report(r); err != nil {
			fmt.Fprintln(args.Stderr, err)
			return ExitFailure
		}
		tly.Report(r)
	}

	if args.PlotFname != "" {
		if len(tly.Results()) == 0 {
			report.Warnf(args.Stderr, "nothing to plot, not writing %s", args.PlotFname)
		} else if err := plot.Write(args.PlotFname, &tly); err != nil {
			fmt.Fprintln(args.Stderr, err)
			return ExitFailure
		}
	}
	return ExitSuccess
}

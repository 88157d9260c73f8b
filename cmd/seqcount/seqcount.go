// 14 Oct 2026
// seqcount counts sequences and residues in fasta and fastq files.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	. "github.com/andrew-torda/seqcount/pkg/seq/common"
	"github.com/andrew-torda/seqcount/pkg/seqcount"
)

// run parses argv (without the program name) and counts the files.
// It returns the exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("seqcount", flag.ContinueOnError)
	f.SetOutput(stderr)
	args := seqcount.CmdArgs{Stdout: stdout, Stderr: stderr}
	f.BoolVar(&args.Summary, "summary", false, "write results to summary.txt instead of the terminal")
	f.StringVar(&args.PlotFname, "plot", "", "draw a png bar chart of residues per file")
	f.BoolVar(&args.Time, "t", false, "print out timing information")
	f.Usage = func() {
		fmt.Fprintln(stderr, "usage:", path.Base(os.Args[0]), "[-summary] [-plot file.png] [-t] file [file ...]")
		f.PrintDefaults()
	}
	if err := f.Parse(argv); err != nil {
		return ExitUsageError
	}
	args.Fnames = f.Args()
	return seqcount.Mymain(args)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seqcount/pkg/randseq"
	. "github.com/andrew-torda/seqcount/pkg/seq/common"
)

// run parses argv (without the program name), writes the sequences
// and returns the exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("randseq", flag.ContinueOnError)
	f.SetOutput(stderr)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.BoolVar(&args.Fastq, "fastq", false, "write fastq instead of fasta")
	f.BoolVar(&args.Blank, "b", false, "add blank lines to fasta output")
	f.IntVar(&args.Nseq, "n", 1000, "number of sequences")
	f.IntVar(&args.Len, "l", 500, "maximum sequence length")
	f.IntVar(&args.Width, "w", 60, "fasta line width, 0 for one line per sequence")
	f.Int64Var(&args.Iseed, "s", iseed, "random number seed")
	f.StringVar(&args.Cmmt, "c", "random", "comment for each sequence")
	if err := f.Parse(argv); err != nil {
		return ExitUsageError
	}
	if f.NArg() > 1 {
		fmt.Fprintln(stderr, "Too many args\nrandseq [options] [outfile]")
		f.Usage()
		return ExitUsageError
	}

	var ft *os.File
	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = stdout
	} else {
		var err error
		if ft, err = os.Create(fname); err != nil {
			fmt.Fprintln(stderr, "File for output:", err)
			return ExitFailure
		}
		args.Wrtr = ft
	}

	nres, err := randseq.RandSeqMain(&args)
	if ft != nil {
		if cerr := ft.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", fname, cerr)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	fmt.Fprintln(stderr, "wrote", args.Nseq, "sequences,", nres, "residues")
	return ExitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

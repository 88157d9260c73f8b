// 31 July 2020

package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

var (
	letters = []byte("acgtACGTn")
	// Quality symbols deliberately include "@" and "+", which are the
	// characters that confuse naive fastq readers.
	qualSyms = []byte("!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJ")
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Maximum length of sequences. Lengths vary from 1 to Len.
	Width int       // fasta line width, 0 means one line per sequence
	Fastq bool      // write fastq instead of fasta
	Blank bool      // put blank lines and spaces in fasta, which should not count
}

// getseq returns a byte slice with a random sequence in it
func getseq(maxlen int, rnd *rand.Rand) []byte {
	seqlen := 1 + rnd.Intn(maxlen)
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// qual makes a quality string as long as the sequence.
func qual(n int, rnd *rand.Rand) []byte {
	ret := make([]byte, n)
	for i := range ret {
		ret[i] = qualSyms[rnd.Intn(len(qualSyms))]
	}
	return ret
}

// writeFasta writes one record. If asked, the sequence is broken over
// lines of args.Width and trailed by a line of white space.
func writeFasta(w *bufio.Writer, args *RandSeqArgs, i, width int, s []byte) {
	fmt.Fprintf(w, ">%s %[3]*[2]d\n", args.Cmmt, i, width)
	step := len(s)
	if args.Width > 0 {
		step = args.Width
	}
	for len(s) > 0 {
		n := min(step, len(s))
		w.Write(s[:n])
		w.WriteByte('\n')
		s = s[n:]
	}
	if args.Blank {
		w.WriteString("  \t\n\n")
	}
}

// writeFastq writes one four line record.
func writeFastq(w *bufio.Writer, args *RandSeqArgs, i, width int, s, q []byte) {
	fmt.Fprintf(w, "@%s %[3]*[2]d\n", args.Cmmt, i, width)
	w.Write(s)
	w.WriteString("\n+\n")
	w.Write(q)
	w.WriteByte('\n')
}

type record struct {
	s, q []byte
}

// writeseq takes records from a channel and writes them.
func writeseq(rChan <-chan record, args *RandSeqArgs, err *error, wg *sync.WaitGroup) {
	defer wg.Done()
	w := bufio.NewWriter(args.Wrtr)
	width := len(fmt.Sprintf("%d", args.Nseq))
	var i int
	for r := range rChan {
		i++
		if args.Fastq {
			writeFastq(w, args, i, width, r.s, r.q)
		} else {
			writeFasta(w, args, i, width, r.s)
		}
	}
	*err = w.Flush()
}

// RandSeqMain writes random sequences to an io.Writer.
// It returns the number of residues written, so tests know what
// a counter should find.
func RandSeqMain(args *RandSeqArgs) (int64, error) {
	if args.Len < 1 {
		return 0, fmt.Errorf("sequence length must be at least 1, got %d", args.Len)
	}
	var wg sync.WaitGroup
	var werr error
	var nres int64
	rnd := rand.New(rand.NewSource(args.Iseed))
	rChan := make(chan record)
	wg.Add(1)
	go writeseq(rChan, args, &werr, &wg)
	for i := 0; i < args.Nseq; i++ {
		r := record{s: getseq(args.Len, rnd)}
		if args.Fastq {
			r.q = qual(len(r.s), rnd)
		}
		nres += int64(len(r.s))
		rChan <- r
	}
	close(rChan)
	wg.Wait()
	return nres, werr
}

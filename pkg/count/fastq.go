package count

import "github.com/andrew-torda/seqcount/pkg/seq/common"

// A fastq record is four lines: header, sequence, separator, quality.
// fastqState says which of these we expect on the next line.
type fastqState byte

const (
	expectHeader fastqState = iota
	expectSeq
	expectSep
	expectQual
	nFastqState
)

var stateNames = [nFastqState]string{"header", "sequence", "separator", "quality"}

func (s fastqState) String() string { return stateNames[s] }

// nextState is where we go after a line has been used. A line which
// is not a header, when we want a header, does not get here.
var nextState = [nFastqState]fastqState{
	expectHeader: expectSeq,
	expectSeq:    expectSep,
	expectSep:    expectQual,
	expectQual:   expectHeader,
}

// Fastq counts the records in fastq format input.
// We do not look for "@" and "+" on every line, since a quality string
// may start with either of them. Instead we follow the four line cycle
// and only check for "@" when a header is due. If it is not there, we
// keep throwing lines away until one starts with "@". This lets us
// step over junk between records, but it is a guess, not a check.
// If a record is cut short at the end, its sequence line still counts.
func Fastq(lns Lines) (Result, error) {
	var r Result
	state := expectHeader
	for lns.Scan() {
		line := lns.Bytes()
		switch state {
		case expectHeader:
			if len(line) == 0 || line[0] != common.FastqHdr {
				continue // stay here until we find a header
			}
			r.NSeq++
		case expectSeq:
			r.NRes += nRes(line)
		}
		state = nextState[state]
	}
	return r, lns.Err()
}

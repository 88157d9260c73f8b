package count

import "github.com/andrew-torda/seqcount/pkg/seq/common"

// Fasta counts the records in fasta format input. Every line starting
// with ">" is a new sequence. Every other line, including blank
// ones, adds its length to the number of residues, so sequences
// wrapped over many lines are fine.
// On a read error, we return what we counted so far, and the error.
func Fasta(lns Lines) (Result, error) {
	var r Result
	for lns.Scan() {
		line := lns.Bytes()
		if len(line) > 0 && line[0] == common.FastaHdr {
			r.NSeq++
		} else {
			r.NRes += nRes(line)
		}
	}
	return r, lns.Err()
}

package report

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/seqcount/pkg/count"
)

// Columns of the matrix from Tally.Matrix
const (
	ColSeq = iota
	ColRes
	nCol
)

// Tally keeps every result of a run, in order. It is also a Sink, so
// the driver can hand results to it like anything else.
type Tally struct {
	results []count.Result
}

func (t *Tally) Report(r count.Result) error {
	t.results = append(t.results, r)
	return nil
}

// Results returns the results so far. Do not change them.
func (t *Tally) Results() []count.Result { return t.results }

// Total sums over all files.
func (t *Tally) Total() count.Result {
	tot := count.Result{Fname: "total"}
	for _, r := range t.results {
		tot.NSeq += r.NSeq
		tot.NRes += r.NRes
	}
	return tot
}

// Matrix has a row for each file, with sequence and residue counts in
// columns ColSeq and ColRes. Each column is scaled by its biggest
// value, so the largest entry is 1. A column of zeroes stays zero.
// Plotting code wants floats, not exact counts.
func (t *Tally) Matrix() *matrix.FMatrix2d {
	mat := matrix.NewFMatrix2d(len(t.results), nCol)
	var mx [nCol]int64
	for _, r := range t.results {
		mx[ColSeq] = max(mx[ColSeq], r.NSeq)
		mx[ColRes] = max(mx[ColRes], r.NRes)
	}
	for i, r := range t.results {
		for j, v := range [nCol]int64{r.NSeq, r.NRes} {
			if mx[j] > 0 {
				mat.Mat[i][j] = float32(float64(v) / float64(mx[j]))
			}
		}
	}
	return mat
}

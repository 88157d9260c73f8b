package plot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/seqcount/pkg/count"
	"github.com/andrew-torda/seqcount/pkg/plot"
	"github.com/andrew-torda/seqcount/pkg/report"
)

func tally() *report.Tally {
	var tly report.Tally
	tly.Report(count.Result{Fname: "a.fa", NSeq: 2, NRes: 10})
	tly.Report(count.Result{Fname: "b.fq", NSeq: 2, NRes: 5})
	tly.Report(count.Result{Fname: strings.Repeat("long_name_", 10) + ".fa", NSeq: 1, NRes: 0})
	return &tly
}

func TestWrite(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "plot.png")
	if err := plot.Write(fname, tally()); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal("plot is not a png:", err)
	}
	b := img.Bounds()
	if b.Dx() != plot.Width || b.Dy() != plot.Height(3) {
		t.Fatalf("plot is %d x %d", b.Dx(), b.Dy())
	}
}

// TestBars checks the biggest file gets a full bar, the half size one
// gets half, and the empty one gets none.
func TestBars(t *testing.T) {
	img, err := plot.Draw(tally())
	if err != nil {
		t.Fatal(err)
	}
	want := plot.BarColour()
	full := plot.BarRect(0, 1)
	if got := img.RGBAAt(full.Max.X-1, full.Min.Y+1); got != want {
		t.Errorf("end of full bar is %v", got)
	}
	half := plot.BarRect(1, 0.5)
	if got := img.RGBAAt(half.Max.X-1, half.Min.Y+1); got != want {
		t.Errorf("end of half bar is %v", got)
	}
	if got := img.RGBAAt(full.Max.X-1, half.Min.Y+1); got == want {
		t.Error("half bar runs the full length")
	}
	empty := plot.BarRect(2, 1)
	if got := img.RGBAAt(empty.Min.X+1, empty.Min.Y+1); got == want {
		t.Error("bar drawn for a file with no residues")
	}
}

func TestEmpty(t *testing.T) {
	if _, err := plot.Draw(&report.Tally{}); err == nil {
		t.Error("plotting nothing gave no error")
	}
}

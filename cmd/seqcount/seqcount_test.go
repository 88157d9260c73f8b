package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/seqcount/pkg/count"
	"github.com/andrew-torda/seqcount/pkg/report"
	. "github.com/andrew-torda/seqcount/pkg/seq/common"
)

func inDir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestRunNoArgs(t *testing.T) {
	inDir(t, t.TempDir())
	for _, argv := range [][]string{nil, {"-summary"}} {
		var stdout, stderr bytes.Buffer
		if code := run(argv, &stdout, &stderr); code != ExitUsageError {
			t.Errorf("%q: exit code %d", argv, code)
		}
		if stdout.Len() != 0 || stderr.Len() != 0 {
			t.Errorf("%q: output %q %q", argv, stdout.String(), stderr.String())
		}
	}
	if _, err := os.Stat(report.SummaryFname); !os.IsNotExist(err) {
		t.Error("summary.txt created with no files")
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nonsense", "a.fa"}, &stdout, &stderr); code != ExitUsageError {
		t.Errorf("exit code %d", code)
	}
	if stderr.Len() == 0 {
		t.Error("no usage message for a bad flag")
	}
}

// TestRunSummary is "-summary a.fa b.fq" with b.fq missing, run in
// the working directory like a user would.
func TestRunSummary(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)
	if err := os.WriteFile("a.fa", []byte(">seq1\nACGT\nAC\n>seq2\nGGGG\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-summary", "a.fa", "b.fq"}, &stdout, &stderr); code != ExitSuccess {
		t.Fatalf("exit code %d", code)
	}
	got, err := os.ReadFile(filepath.Join(dir, report.SummaryFname))
	if err != nil {
		t.Fatal(err)
	}
	want := report.Block(count.Result{Fname: "a.fa", NSeq: 2, NRes: 10})
	if string(got) != want {
		t.Errorf("summary got %q want %q", got, want)
	}
	if stderr.String() != "WARNING: b.fq does not exist!\n" {
		t.Errorf("stderr %q", stderr.String())
	}
}

package lines_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/seqcount/brokenio"
	"github.com/andrew-torda/seqcount/pkg/lines"
	"github.com/andrew-torda/seqcount/pkg/seq/common"
)

// collect reads everything from a source, copying each line.
func collect(t *testing.T, s *lines.Source) []string {
	t.Helper()
	var got []string
	for s.Scan() {
		got = append(got, string(s.Bytes()))
	}
	if err := s.Err(); err != nil {
		t.Fatal("reading lines:", err)
	}
	return got
}

var lineTests = []struct {
	in   string
	want []string
}{
	{"", nil},
	{"a", []string{"a"}},
	{"a\n", []string{"a"}},
	{"a\nbb\n\nccc", []string{"a", "bb", "", "ccc"}},
	{"dos\r\nfile\r\n", []string{"dos", "file"}},
	{"\n\n", []string{"", ""}},
}

func TestNew(t *testing.T) {
	for _, tt := range lineTests {
		got := collect(t, lines.New(strings.NewReader(tt.in)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("New(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

// TestOpen writes each case to a plain and a compressed file. Both
// have to give the same lines as reading from a string.
func TestOpen(t *testing.T) {
	for _, tt := range lineTests {
		plain, err := common.WrtTemp(tt.in, ".fa")
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(plain)
		gz, err := common.WrtTempGz(tt.in, ".fa.gz")
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(gz)
		for _, f := range []struct {
			name string
			gz   bool
		}{{plain, false}, {gz, true}} {
			s, err := lines.Open(f.name, f.gz)
			if err != nil {
				t.Fatal("open", f.name, err)
			}
			got := collect(t, s)
			if err := s.Close(); err != nil {
				t.Error("close", f.name, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Open(%q) gz=%v mismatch (-want +got):\n%s", tt.in, f.gz, diff)
			}
		}
	}
}

func TestOpenMissing(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "not_there.fa")
	for _, gz := range []bool{false, true} {
		if _, err := lines.Open(fname, gz); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("gz=%v want ErrNotExist, got %v", gz, err)
		}
	}
}

// A file claiming to be compressed, but which is not, should fail on opening.
func TestOpenNotGzip(t *testing.T) {
	fname, err := common.WrtTemp(">s1\nACGT\n", ".fa.gz")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if s, err := lines.Open(fname, true); err == nil {
		s.Close()
		t.Fatal("plain text opened as gzip without error")
	}
}

func TestCloseTwice(t *testing.T) {
	fname, err := common.WrtTemp("abc\n", ".fa")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	s, err := lines.Open(fname, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal("first close", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal("second close", err)
	}
}

// TestLongLine has a line much longer than the initial scanner buffer.
func TestLongLine(t *testing.T) {
	long := strings.Repeat("acgt", 100*1024)
	got := collect(t, lines.New(strings.NewReader(">x\n"+long+"\n")))
	if len(got) != 2 || got[1] != long {
		t.Fatalf("long line came back as %d lines", len(got))
	}
}

func TestReadError(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader("aaa\nbbb\nccc\n")))
	rdr.SetFailAfter(5)
	s := lines.New(rdr)
	for s.Scan() {
	}
	if !errors.Is(s.Err(), brokenio.ErrBroken) {
		t.Fatalf("want ErrBroken, got %v", s.Err())
	}
}

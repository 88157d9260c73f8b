// 29 Apr 2020

package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	FastaHdr byte = '>' // starts a fasta record
	FastqHdr byte = '@' // starts a fastq record
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// The suffix matters, since the format of a file is guessed from
// its name, so give something like ".fa" or ".fq.gz".
func WrtTemp(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix)
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// WrtTempGz is like WrtTemp, but the contents are gzip compressed.
func WrtTempGz(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix)
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	name := f_tmp.Name()
	defer f_tmp.Close()
	zw := gzip.NewWriter(f_tmp)
	if _, err := io.WriteString(zw, s); err != nil {
		return "", fmt.Errorf("writing compressed string to %v: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("closing compressor on %v: %w", name, err)
	}
	return name, nil
}

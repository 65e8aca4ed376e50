// core/textio/textio.go
package textio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// gzipReadCloser pairs a gzip stream with the file beneath it so Close
// releases both.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gerr := g.Reader.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// OpenReader opens one text input the way every tpsrank reader does: "-"
// means stdin, and gzip is unwrapped transparently. Compression is
// recognized by the 1F 8B magic bytes, with the .gz suffix as a fallback
// for inputs too short to sniff.
func OpenReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipReadCloser{Reader: gz, file: fh}, nil
	}
	return fh, nil
}

// NewScanner returns a line scanner sized for very long lines (64 MiB).
// Newick trees in particular arrive as a single line.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return sc
}

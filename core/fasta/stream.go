// core/fasta/stream.go
package fasta

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"tpsrank-core/textio"
)

// Record is one protein sequence. ID is the first whitespace-delimited
// token of the header line.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and calls emit once per record. It is
// cancelable between lines; emit may return an error (ctx.Err() included)
// to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := textio.NewScanner(r)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)
	flush := func() error {
		if id == "" {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			if id == "" {
				return fmt.Errorf("fasta: empty header")
			}
			continue
		}
		if id == "" {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path ("-" = stdin, gzip by magic) and streams it.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := textio.OpenReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

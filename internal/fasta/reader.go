// Package fasta streams protein records from .faa and .faa.gz files.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. Seq holds the raw residue codes
// with line breaks and surrounding whitespace removed.
type Record struct {
	ID  string
	Seq []byte
}

// ParseError reports structurally malformed FASTA input.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fasta %s: line %d: %s", e.Path, e.Line, e.Msg)
}

// EachRecord opens path and calls emit once per record, in file order.
// Cancellation via ctx is honored between lines. Returning a non-nil
// error from emit stops the scan and propagates that error.
func EachRecord(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return eachRecord(ctx, path, rc, emit)
}

func eachRecord(ctx context.Context, path string, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	// Allow very long single-line sequences (64 MiB).
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		seq     = make([]byte, 0, 1<<12)
		started bool
		lineNo  int
	)

	flush := func() error {
		if !started {
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
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			started = true
			continue
		}
		if !started {
			return &ParseError{Path: path, Line: lineNo, Msg: "sequence data before first header"}
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan %s: %w", path, err)
	}
	return flush()
}

// parseHeaderID keeps the first whitespace-delimited token of a header.
func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

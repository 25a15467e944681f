// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/cockroachdb/errors"

	"drach/core/seq"
)

// Marker starts a new record.
const Marker = '>'

// Stream parses FASTA from r and calls emit once per record, in input order.
// Lines before the first header belong to no record and are dropped.
//
// It is cancelable: ctx is checked between lines.
func Stream(ctx context.Context, r io.Reader, emit func(seq.Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		open    bool
		id, hdr string
		payload = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !open {
			return nil
		}
		return emit(seq.New(id, hdr, payload))
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) > 0 && line[0] == Marker {
			if err := flush(); err != nil {
				return err
			}
			open = true
			id = parseHeaderID(line[1:])
			hdr = string(line)
			payload = payload[:0]
			continue
		}
		line = bytes.TrimSpace(line)
		if !open || len(line) == 0 {
			continue
		}
		payload = append(payload, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// core/fasta/reader.go
package fasta

import (
	"context"
	"io"

	"drach/core/seq"
)

// Parse reads every record from r.
func Parse(ctx context.Context, r io.Reader) ([]seq.Record, error) {
	var out []seq.Record
	err := Stream(ctx, r, func(rec seq.Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseFile opens path (gzip and "-" for stdin handled by Open) and parses it.
func ParseFile(ctx context.Context, path string) ([]seq.Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(ctx, rc)
}

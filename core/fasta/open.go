// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source pairs a (possibly decompressing) reader with everything that must be
// closed after it, innermost first.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader over path. "-" reads stdin. Gzip input is recognised
// by its magic bytes or a .gz suffix and decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	var raw io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %q", path)
		}
		raw = fh
	}

	br := bufio.NewReaderSize(raw, 64<<10)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) && !strings.HasSuffix(path, ".gz") {
		return &source{Reader: br, closers: []io.Closer{raw}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = raw.Close()
		return nil, errors.Wrapf(err, "gzip %q", path)
	}
	return &source{Reader: gr, closers: []io.Closer{gr, raw}}, nil
}

package writers

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"drach/internal/output"
)

var (
	// ErrExtension means a destination does not carry the formatter's extension.
	ErrExtension = errors.New("unexpected output extension")
	// ErrName means a record ID cannot be used as a file name.
	ErrName = errors.New("record id is not a usable file name")
)

// RecordWriter writes one file per record into Dir.
type RecordWriter struct {
	Dir       string
	Formatter output.Formatter
}

// Path returns the destination for record id.
func (w RecordWriter) Path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", errors.Wrapf(ErrName, "%q", id)
	}
	return filepath.Join(w.Dir, id+w.Formatter.Ext()), nil
}

// Write renders entries into the record's file, replacing any previous file.
func (w RecordWriter) Write(id string, entries []output.Entry) (string, error) {
	path, err := w.Path(id)
	if err != nil {
		return "", err
	}
	return path, WriteFile(path, w.Formatter, entries)
}

// WriteFile renders entries into path. path must end with f.Ext().
func WriteFile(path string, f output.Formatter, entries []output.Entry) error {
	if filepath.Ext(path) != f.Ext() {
		return errors.Wrapf(ErrExtension, "%q (want %s)", path, f.Ext())
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	bw := bufio.NewWriter(fh)
	for _, e := range entries {
		if err := f.Format(bw, e); err != nil {
			_ = fh.Close()
			return errors.Wrapf(err, "write %q", path)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return errors.Wrapf(err, "flush %q", path)
	}
	return errors.Wrapf(fh.Close(), "close %q", path)
}

package writers

import (
	"bufio"
	"io"
	"syscall"

	"github.com/cockroachdb/errors"
)

// IsBrokenPipe reports whether err comes from a reader that went away
// (for example `drach -h | head -1`).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flush flushes w, treating a broken pipe as success.
func Flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil && !IsBrokenPipe(err) {
		return errors.Wrap(err, "flush")
	}
	return nil
}

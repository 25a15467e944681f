// core/seq/record.go
package seq

import (
	"bytes"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// FASTAExtensions lists the destination suffixes Save accepts.
var FASTAExtensions = []string{".fasta", ".fas"}

// ErrExtension is returned by Save for destinations that are not FASTA files.
var ErrExtension = errors.New("destination must end with .fasta or .fas")

// Record is one parsed sequence. Payload is the only field analysis reads;
// Origin, when set, is a private copy of the record this one was derived from.
type Record struct {
	ID      string
	Header  string
	Payload []byte
	Origin  *Record
}

// New copies payload so the caller may reuse its buffer.
func New(id, header string, payload []byte) Record {
	return Record{ID: id, Header: header, Payload: bytes.Clone(payload)}
}

func (r Record) Len() int { return len(r.Payload) }

// Clone returns a deep copy, origin chain included.
func (r Record) Clone() Record {
	c := Record{ID: r.ID, Header: r.Header, Payload: bytes.Clone(r.Payload)}
	if r.Origin != nil {
		o := r.Origin.Clone()
		c.Origin = &o
	}
	return c
}

// Derive returns a record with the same identity and a new payload. The
// receiver is deep-copied into Origin, so the two never share memory.
func (r Record) Derive(payload []byte) Record {
	o := r.Clone()
	return Record{ID: r.ID, Header: r.Header, Payload: bytes.Clone(payload), Origin: &o}
}

// ClampRange clamps the half-open range [start,end) into [0, Len()].
func (r Record) ClampRange(start, end int) (int, int) {
	n := len(r.Payload)
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	return start, end
}

// FASTA renders the record with the payload wrapped at lineLen columns
// (lineLen <= 0 disables wrapping). A header that already carries the '>'
// marker is written as is.
func (r Record) FASTA(lineLen int) string {
	var b strings.Builder
	if !strings.HasPrefix(r.Header, ">") {
		b.WriteByte('>')
	}
	b.WriteString(r.Header)
	if lineLen <= 0 {
		lineLen = len(r.Payload)
	}
	for i := 0; i < len(r.Payload); i += lineLen {
		end := min(i+lineLen, len(r.Payload))
		b.WriteByte('\n')
		b.Write(r.Payload[i:end])
	}
	return b.String()
}

// Save writes the record as FASTA (80 columns) to path, appending when asked.
func (r Record) Save(path string, appendTo bool) error {
	if !HasFASTAExt(path) {
		return errors.Wrapf(ErrExtension, "save %q", path)
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	fh, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	if _, err := fh.WriteString(r.FASTA(80) + "\n"); err != nil {
		_ = fh.Close()
		return errors.Wrapf(err, "write %q", path)
	}
	return fh.Close()
}

// HasFASTAExt reports whether path ends with one of FASTAExtensions.
func HasFASTAExt(path string) bool {
	for _, ext := range FASTAExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

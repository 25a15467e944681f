// core/motif/mask.go
package motif

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// Margin widens an occurrence on each side to form its footprint.
const Margin = 5

// DefaultMaxAttempts bounds the redraw loop of Mask.
const DefaultMaxAttempts = 10000

// Alphabet is the set replacement bases are drawn from.
var Alphabet = [4]byte{'A', 'U', 'G', 'C'}

var (
	// ErrMaskExhausted means the redraw loop hit its attempt cap.
	ErrMaskExhausted = errors.New("motif mask: attempts exhausted")
	// ErrSpan means the occurrence does not fit the working payload.
	ErrSpan = errors.New("motif mask: occurrence outside payload")
)

// Footprint returns o widened by Margin on both sides, clamped to [0,n).
func Footprint(o Occurrence, n int) (int, int) {
	return max(o.Start-Margin, 0), min(o.End+Margin, n)
}

// Masker scrubs occurrences out of a working payload by redrawing their
// bases at random. It is not safe for concurrent use.
type Masker struct {
	rnd         *rand.Rand
	MaxAttempts int
}

// NewMasker draws from src; a nil src gets a randomly seeded PCG.
func NewMasker(src rand.Source) *Masker {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Masker{rnd: rand.New(src), MaxAttempts: DefaultMaxAttempts}
}

// NewSeededMasker returns a Masker whose draws repeat for equal seeds.
func NewSeededMasker(seed uint64) *Masker {
	return NewMasker(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Mask redraws work[o.Start:o.End] until no motif window inside o's footprint
// touches those positions. Bases outside [o.Start,o.End) are never written.
// A footprint that is already clean is left as is.
func (m *Masker) Mask(work []byte, o Occurrence) error {
	if o.Start < 0 || o.End > len(work) || o.End-o.Start != Length {
		return errors.Wrapf(ErrSpan, "span [%d,%d) over %d bases", o.Start, o.End, len(work))
	}
	fs, fe := Footprint(o, len(work))
	limit := m.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	for attempts := 0; touches(work, fs, fe, o.Start, o.End); attempts++ {
		if attempts >= limit {
			return errors.Wrapf(ErrMaskExhausted, "span [%d,%d) after %d attempts", o.Start, o.End, attempts)
		}
		for i := o.Start; i < o.End; i++ {
			work[i] = Alphabet[m.rnd.IntN(len(Alphabet))]
		}
	}
	return nil
}

// touches reports whether a motif window lying inside [fs,fe) shares at
// least one position with [s,e).
func touches(work []byte, fs, fe, s, e int) bool {
	lo := max(fs, s-Length+1)
	hi := min(e-1, fe-Length)
	for p := lo; p <= hi; p++ {
		if MatchAt(work, p) {
			return true
		}
	}
	return false
}

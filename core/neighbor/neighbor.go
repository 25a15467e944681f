// Package neighbor cuts the flank windows on either side of a motif
// occurrence, scrubbing any other occurrence that leaks into the window.
//
// Every extraction works on a private copy of the record payload, so the
// record and its occurrences are never mutated and requests can be evaluated
// in any order.
package neighbor

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"drach/core/motif"
	"drach/core/seq"
)

// DefaultLength is the flank length used when none is configured.
const DefaultLength = 15

// ErrConstruction marks requests that are missing or carry invalid fields.
var ErrConstruction = errors.New("neighbor: invalid request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Side selects the flank.
type Side int

const (
	Left Side = iota + 1
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Context groups a record with all of its occurrences so a flank can see
// its siblings. Build it once per record.
type Context struct {
	Record      seq.Record
	Occurrences []motif.Occurrence
}

// NewContext scans rec and bundles the result.
func NewContext(rec seq.Record) *Context {
	return &Context{Record: rec, Occurrences: motif.Scan(rec.Payload)}
}

// Request is one flank to extract. Build it with New.
type Request struct {
	Occurrence motif.Occurrence
	Context    *Context `validate:"required"`
	Side       Side     `validate:"required,oneof=1 2"`
	Length     int      `validate:"gte=0"`
}

// New validates all four fields at once and returns a ready request. The
// occurrence must be one of ctx's own occurrences.
func New(occ motif.Occurrence, ctx *Context, side Side, length int) (Request, error) {
	r := Request{Occurrence: occ, Context: ctx, Side: side, Length: length}
	if err := validate.Struct(r); err != nil {
		return Request{}, errors.Mark(errors.Wrap(err, "neighbor request"), ErrConstruction)
	}
	if occ.Index < 0 || occ.Index >= len(ctx.Occurrences) || ctx.Occurrences[occ.Index] != occ {
		return Request{}, errors.Mark(
			errors.Newf("neighbor request: occurrence %d [%d,%d) not in context", occ.Index, occ.Start, occ.End),
			ErrConstruction,
		)
	}
	return r, nil
}

// Window returns the flank's half-open range clamped to the payload. Near
// either end of the record the range is shorter than Length, possibly empty.
func (r Request) Window() (int, int) {
	o := r.Occurrence
	var start, end int
	switch r.Side {
	case Left:
		start, end = o.Start-r.Length, o.Start
	case Right:
		start, end = o.End, o.End+r.Length
	}
	return r.Context.Record.ClampRange(start, end)
}

// Extract returns the flank text. Other occurrences whose span intersects the
// window are masked on a working copy, in ascending Start order.
func (r Request) Extract(m *motif.Masker) (string, error) {
	start, end := r.Window()
	work := bytes.Clone(r.Context.Record.Payload)
	for _, o := range r.Context.Occurrences {
		if o.Index == r.Occurrence.Index || !o.Overlaps(start, end) {
			continue
		}
		if err := m.Mask(work, o); err != nil {
			return "", errors.Wrapf(err, "%s flank of occurrence %d", r.Side, r.Occurrence.Index+1)
		}
	}
	return string(work[start:end]), nil
}

// Flanks extracts the left then the right flank of occ.
func Flanks(ctx *Context, occ motif.Occurrence, length int, m *motif.Masker) (left, right string, err error) {
	for _, side := range []Side{Left, Right} {
		req, err := New(occ, ctx, side, length)
		if err != nil {
			return "", "", err
		}
		txt, err := req.Extract(m)
		if err != nil {
			return "", "", err
		}
		if side == Left {
			left = txt
		} else {
			right = txt
		}
	}
	return left, right, nil
}

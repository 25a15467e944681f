package neighbor

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"drach/core/motif"
	"drach/core/seq"
)

// MaskAll returns a record derived from ctx.Record with every occurrence
// scrubbed. The result's Origin holds the unmasked record.
func MaskAll(ctx *Context, m *motif.Masker) (seq.Record, error) {
	work := bytes.Clone(ctx.Record.Payload)
	for _, o := range ctx.Occurrences {
		if err := m.Mask(work, o); err != nil {
			return seq.Record{}, errors.Wrapf(err, "mask %s", ctx.Record.ID)
		}
	}
	return ctx.Record.Derive(work), nil
}

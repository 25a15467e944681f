package cmdutil

import (
	"context"

	"drach/core/seq"
	"drach/internal/pipeline"
)

// Totals counts what a run produced.
type Totals struct {
	Records     int
	Occurrences int
}

// RunStream runs the shared pipeline and forwards each result to send.
// It returns running totals and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	recs []seq.Record,
	send func(pipeline.Result) error,
) (Totals, error) {
	var t Totals
	err := pipeline.ForEachRecord(ctx, cfg, recs, func(r pipeline.Result) error {
		if err := send(r); err != nil {
			return err
		}
		t.Records++
		t.Occurrences += len(r.Flanks)
		return nil
	})
	return t, err
}

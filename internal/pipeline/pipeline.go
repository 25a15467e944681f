// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"github.com/cockroachdb/errors"

	"drach/core/motif"
	"drach/core/neighbor"
	"drach/core/seq"
)

// Config controls the per-record processing.
type Config struct {
	Flank   int           // flank length on each side
	Masker  *motif.Masker // shared random source for masking
	MaskAll bool          // also build a fully masked copy of each record
}

// Flank holds both sides of one occurrence.
type Flank struct {
	Occurrence motif.Occurrence
	Left       string
	Right      string
}

// Result is everything produced for one record.
type Result struct {
	Record seq.Record
	Flanks []Flank
	Masked *seq.Record // set when Config.MaskAll
}

// Process scans rec and extracts every flank pair.
func Process(cfg Config, rec seq.Record) (Result, error) {
	if cfg.Masker == nil {
		cfg.Masker = motif.NewMasker(nil)
	}
	ctx := neighbor.NewContext(rec)
	res := Result{Record: rec, Flanks: make([]Flank, 0, len(ctx.Occurrences))}
	for _, occ := range ctx.Occurrences {
		left, right, err := neighbor.Flanks(ctx, occ, cfg.Flank, cfg.Masker)
		if err != nil {
			return Result{}, errors.Wrapf(err, "record %q", rec.ID)
		}
		res.Flanks = append(res.Flanks, Flank{Occurrence: occ, Left: left, Right: right})
	}
	if cfg.MaskAll {
		masked, err := neighbor.MaskAll(ctx, cfg.Masker)
		if err != nil {
			return Result{}, err
		}
		res.Masked = &masked
	}
	return res, nil
}

// ForEachRecord processes recs in order and calls visit with each result.
// It stops at the first error, including context cancellation.
func ForEachRecord(ctx context.Context, cfg Config, recs []seq.Record, visit func(Result) error) error {
	if cfg.Masker == nil {
		cfg.Masker = motif.NewMasker(nil)
	}
	for _, rec := range recs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		res, err := Process(cfg, rec)
		if err != nil {
			return err
		}
		if err := visit(res); err != nil {
			return err
		}
	}
	return nil
}

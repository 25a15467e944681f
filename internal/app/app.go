// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"drach/core/fasta"
	"drach/core/motif"
	"drach/core/seq"
	"drach/internal/apperr"
	"drach/internal/cli"
	"drach/internal/cmdutil"
	"drach/internal/logging"
	"drach/internal/output"
	"drach/internal/pipeline"
	"drach/internal/writers"
)

// RunContext parses argv, processes the input and returns the exit code.
// env == nil reads the process environment (and the dotenv file).
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return runWithEnv(parent, argv, nil, stdout, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runWithEnv(parent context.Context, argv []string, env cli.LookupFunc, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	opts, err := cli.Parse(parent, cli.StandardTable, argv, env, outw)
	if err != nil {
		if errors.Is(err, cli.ErrPrintedAndExitOK) {
			if e := writers.Flush(outw); e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return apperr.ExitIO
			}
			return apperr.ExitOK
		}
		_ = writers.Flush(outw)
		_, _ = fmt.Fprintf(stderr, "error: %v\n\n", err)
		cli.Usage(cli.StandardTable, stderr)
		return apperr.ExitUsage
	}

	log := logging.New(logging.Options{
		Level:  opts.LogLevel,
		Format: opts.LogFormat,
		Writer: stderr,
		Quiet:  opts.Quiet,
	}).With().Str("run_id", uuid.NewString()).Logger()

	err = Execute(parent, opts, &log)
	if e := writers.Flush(outw); e != nil && err == nil {
		err = apperr.Output(e, "stdout")
	}
	code := apperr.ExitCode(err)
	if err != nil {
		log.Error().Err(err).Str("kind", apperr.Kind(err)).Int("exit_code", code).Msg("run failed")
	}
	return code
}

// Execute processes one input file with already-merged options.
func Execute(ctx context.Context, opts cli.Options, log *logging.Logger) error {
	recs, err := fasta.ParseFile(ctx, opts.Src)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return apperr.Input(err, "load %s", opts.Src)
	}
	log.Info().Str("src", opts.Src).Int("records", len(recs)).Msg("input loaded")

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return apperr.Output(err, "create output directory")
	}

	f, err := output.Lookup(opts.Format)
	if err != nil {
		return apperr.Config(err, "")
	}
	rw := writers.RecordWriter{Dir: opts.OutDir, Formatter: f}

	masker := motif.NewMasker(nil)
	if opts.Seed != 0 {
		masker = motif.NewSeededMasker(opts.Seed)
	}
	masker.MaxAttempts = opts.MaxAttempts

	cfg := pipeline.Config{
		Flank:   opts.Flank,
		Masker:  masker,
		MaskAll: opts.MaskedFASTA != "",
	}

	plog := logging.Named(*log, "pipeline")
	seen := make(map[string]bool, len(recs))
	failed := 0
	maskedWritten := false

	totals, err := cmdutil.RunStream(ctx, cfg, recs, func(res pipeline.Result) error {
		id := res.Record.ID
		if seen[id] {
			cmdutil.Warnf(&plog, opts.Quiet, "duplicate record id %q: its output replaces the earlier one", id)
		}
		seen[id] = true

		entries := make([]output.Entry, 0, len(res.Flanks))
		for _, fl := range res.Flanks {
			entries = append(entries, output.NewEntry(id, fl.Occurrence, fl.Left, fl.Right))
		}
		path, werr := rw.Write(id, entries)
		if werr == nil && res.Masked != nil {
			werr = saveMasked(opts.MaskedFASTA, *res.Masked, maskedWritten)
			maskedWritten = maskedWritten || werr == nil
		}
		if werr != nil {
			werr = apperr.Output(werr, "record %q", id)
			if !opts.KeepGoing {
				return werr
			}
			failed++
			plog.Error().Err(werr).Str("record", id).Msg("record skipped")
			return nil
		}
		plog.Debug().Str("record", id).Int("motifs", len(entries)).Str("path", path).Msg("record written")
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("records", totals.Records-failed).
		Int("failed", failed).
		Int("motifs", totals.Occurrences).
		Str("out_dir", opts.OutDir).
		Msg("done")
	if failed > 0 {
		return apperr.Output(errors.Newf("%d of %d records failed", failed, totals.Records), "")
	}
	return nil
}

// saveMasked appends rec to path, truncating the file on the first call.
func saveMasked(path string, rec seq.Record, appendTo bool) error {
	if err := rec.Save(path, appendTo); err != nil {
		return errors.Wrap(err, "masked fasta")
	}
	return nil
}

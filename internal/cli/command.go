package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"drach/internal/version"
)

// ErrPrintedAndExitOK is returned by Parse when help or the version was
// printed. Apps should catch this and exit 0.
var ErrPrintedAndExitOK = errors.New("help or version printed")

const examples = `  drach --src sample.fasta --out-dir flanks
  drach -i sample.fasta.gz -o flanks --verbose --flank 20
  zcat reads.fa.gz | drach -i - -o flanks --format jsonl --seed 7
  drach -c drach.yaml --masked-fasta masked.fasta`

// NewCommand builds the root command. Flags are bound from t onto a copy of
// Defaults(); run receives the merged, validated options.
func NewCommand(t Table, env LookupFunc, run func(context.Context, Options) error) *cobra.Command {
	flagged := Defaults()
	cmd := &cobra.Command{
		Use:           "drach --src FILE --out-dir DIR [flags]",
		Short:         "Extract the flanking context of DRACH motifs in RNA sequences",
		Long:          "drach scans every record of a FASTA file for the DRACH motif ([AGU][AG]AC[ACU])\nand writes the bases on either side of each occurrence, with nested motifs masked.",
		Example:       examples,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			merged, err := merge(cmd, t, env, flagged)
			if err != nil {
				return err
			}
			return run(cmd.Context(), merged)
		},
	}
	cmd.SetVersionTemplate("drach version {{.Version}}\n")
	for _, o := range t {
		o.bind(cmd.Flags(), &flagged)
	}
	cmd.Flags().SortFlags = false
	return cmd
}

// Parse runs argv through NewCommand and returns the merged options.
// env == nil reads the process environment and the dotenv file named by
// --env-file.
func Parse(ctx context.Context, t Table, argv []string, env LookupFunc, out io.Writer) (Options, error) {
	var (
		got Options
		ran bool
	)
	cmd := NewCommand(t, env, func(_ context.Context, o Options) error {
		got, ran = o, true
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(out)
	cmd.SetErr(out)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return Options{}, err
	}
	if !ran {
		return Options{}, ErrPrintedAndExitOK
	}
	return got, nil
}

// merge applies config file, environment and explicitly set flags, in
// increasing priority, on top of Defaults().
func merge(cmd *cobra.Command, t Table, env LookupFunc, flagged Options) (Options, error) {
	if env == nil {
		l, err := EnvLookup(flagged.EnvFile)
		if err != nil {
			return Options{}, err
		}
		env = l
	}
	cfgPath := flagged.Config
	if !cmd.Flags().Changed("config") {
		if v, ok := env("DRACH_CONFIG"); ok {
			cfgPath = v
		}
	}

	o := Defaults()
	if cfgPath != "" {
		if err := LoadFile(cfgPath, &o); err != nil {
			return Options{}, err
		}
	}
	if err := ApplyEnv(t, env, &o); err != nil {
		return Options{}, err
	}
	for _, opt := range t {
		if cmd.Flags().Changed(opt.Flag) {
			opt.copy(&o, &flagged)
		}
	}
	o.Config = cfgPath
	if err := Finalize(&o); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Usage renders the command's help text, for error paths.
func Usage(t Table, w io.Writer) {
	cmd := NewCommand(t, nil, nil)
	cmd.SetOut(w)
	_ = cmd.Usage()
	_, _ = fmt.Fprintln(w)
}

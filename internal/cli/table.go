package cli

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// Option describes one setting: its flag, its environment variable and how to
// move its value between Options values.
type Option struct {
	Flag  string
	Short string
	Env   string // empty: not settable from the environment
	Usage string

	bind  func(fs *pflag.FlagSet, o *Options)
	copy  func(dst, src *Options)
	parse func(o *Options, v string) error
}

// Table is the full set of options understood by the command.
type Table []Option

// StandardTable is built once, statically; pass it to NewCommand / Parse.
var StandardTable = Table{
	stringOpt("src", "i", "DRACH_SRC", "input FASTA file ('-' for stdin, gzip ok) [*]", func(o *Options) *string { return &o.Src }),
	stringOpt("out-dir", "o", "DRACH_OUT_DIR", "directory for per-record output files [*]", func(o *Options) *string { return &o.OutDir }),
	boolOpt("verbose", "v", "DRACH_VERBOSE", "annotate flanks with motif text and position (same as --format verbose)", func(o *Options) *bool { return &o.Verbose }),
	stringOpt("format", "f", "DRACH_FORMAT", "output format: compact | verbose | jsonl", func(o *Options) *string { return &o.Format }),
	intOpt("flank", "n", "DRACH_FLANK", "flank length on each side of a motif", func(o *Options) *int { return &o.Flank }),
	uint64Opt("seed", "", "DRACH_SEED", "seed for masking draws (0 = random)", func(o *Options) *uint64 { return &o.Seed }),
	intOpt("max-attempts", "", "DRACH_MAX_ATTEMPTS", "redraw cap when masking one motif", func(o *Options) *int { return &o.MaxAttempts }),
	stringOpt("masked-fasta", "", "DRACH_MASKED_FASTA", "also write every record with all motifs masked to this .fasta/.fas file", func(o *Options) *string { return &o.MaskedFASTA }),
	boolOpt("keep-going", "k", "DRACH_KEEP_GOING", "skip records whose output fails instead of aborting", func(o *Options) *bool { return &o.KeepGoing }),
	stringOpt("log-level", "", "DRACH_LOG_LEVEL", "log level: trace | debug | info | warn | error", func(o *Options) *string { return &o.LogLevel }),
	stringOpt("log-format", "", "DRACH_LOG_FORMAT", "log format: console | json", func(o *Options) *string { return &o.LogFormat }),
	boolOpt("quiet", "q", "DRACH_QUIET", "only log warnings and errors", func(o *Options) *bool { return &o.Quiet }),
	stringOpt("config", "c", "DRACH_CONFIG", "YAML config file", func(o *Options) *string { return &o.Config }),
	stringOpt("env-file", "", "", "dotenv file with DRACH_* settings", func(o *Options) *string { return &o.EnvFile }),
}

// Lookup finds an option by flag name.
func (t Table) Lookup(flag string) (Option, bool) {
	for _, o := range t {
		if o.Flag == flag {
			return o, true
		}
	}
	return Option{}, false
}

func stringOpt(flag, short, env, usage string, f func(*Options) *string) Option {
	return Option{
		Flag: flag, Short: short, Env: env, Usage: usage,
		bind: func(fs *pflag.FlagSet, o *Options) {
			p := f(o)
			fs.StringVarP(p, flag, short, *p, usage)
		},
		copy:  func(dst, src *Options) { *f(dst) = *f(src) },
		parse: func(o *Options, v string) error { *f(o) = v; return nil },
	}
}

func boolOpt(flag, short, env, usage string, f func(*Options) *bool) Option {
	return Option{
		Flag: flag, Short: short, Env: env, Usage: usage,
		bind: func(fs *pflag.FlagSet, o *Options) {
			p := f(o)
			fs.BoolVarP(p, flag, short, *p, usage)
		},
		copy: func(dst, src *Options) { *f(dst) = *f(src) },
		parse: func(o *Options, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(err, "%s", env)
			}
			*f(o) = b
			return nil
		},
	}
}

func intOpt(flag, short, env, usage string, f func(*Options) *int) Option {
	return Option{
		Flag: flag, Short: short, Env: env, Usage: usage,
		bind: func(fs *pflag.FlagSet, o *Options) {
			p := f(o)
			fs.IntVarP(p, flag, short, *p, usage)
		},
		copy: func(dst, src *Options) { *f(dst) = *f(src) },
		parse: func(o *Options, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s", env)
			}
			*f(o) = n
			return nil
		},
	}
}

func uint64Opt(flag, short, env, usage string, f func(*Options) *uint64) Option {
	return Option{
		Flag: flag, Short: short, Env: env, Usage: usage,
		bind: func(fs *pflag.FlagSet, o *Options) {
			p := f(o)
			fs.Uint64VarP(p, flag, short, *p, usage)
		},
		copy: func(dst, src *Options) { *f(dst) = *f(src) },
		parse: func(o *Options, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "%s", env)
			}
			*f(o) = n
			return nil
		},
	}
}

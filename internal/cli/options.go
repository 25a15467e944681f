// internal/cli/options.go
package cli

import (
	"drach/core/motif"
	"drach/core/neighbor"
	"drach/internal/output"
)

// Options holds all settings after flags, environment and config file have
// been merged.
type Options struct {
	// Input / output
	Src    string `yaml:"src" flag:"src" validate:"required"`
	OutDir string `yaml:"out_dir" flag:"out-dir" validate:"required"`

	// Output
	Format      string `yaml:"format" flag:"format" validate:"oneof=compact verbose jsonl"`
	Verbose     bool   `yaml:"verbose" flag:"verbose"`
	MaskedFASTA string `yaml:"masked_fasta" flag:"masked-fasta" validate:"omitempty,endswith=.fasta|endswith=.fas"`
	KeepGoing   bool   `yaml:"keep_going" flag:"keep-going"`

	// Extraction
	Flank       int    `yaml:"flank" flag:"flank" validate:"gte=0"`
	Seed        uint64 `yaml:"seed" flag:"seed"`
	MaxAttempts int    `yaml:"max_attempts" flag:"max-attempts" validate:"gte=1"`

	// Logging
	LogLevel  string `yaml:"log_level" flag:"log-level" validate:"oneof=trace debug info warn error"`
	LogFormat string `yaml:"log_format" flag:"log-format" validate:"oneof=console json"`
	Quiet     bool   `yaml:"quiet" flag:"quiet"`

	// Config sources; not read from the config file itself.
	Config  string `yaml:"-" flag:"config"`
	EnvFile string `yaml:"-" flag:"env-file"`
}

// Defaults returns the built-in settings.
func Defaults() Options {
	return Options{
		Format:      output.FormatCompact,
		Flank:       neighbor.DefaultLength,
		MaxAttempts: motif.DefaultMaxAttempts,
		LogLevel:    "info",
		LogFormat:   "console",
		EnvFile:     ".env",
	}
}

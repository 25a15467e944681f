package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
)

// Formatter renders entries for one output file.
type Formatter interface {
	Name() string
	Ext() string // file extension including the dot
	Format(w io.Writer, e Entry) error
}

// Compact writes the left flank then the right flank, one per line.
type Compact struct{}

func (Compact) Name() string { return FormatCompact }
func (Compact) Ext() string  { return ".fasta" }
func (Compact) Format(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", e.Left, e.Right)
	return err
}

// Verbose annotates each pair with the motif and its position.
type Verbose struct{}

func (Verbose) Name() string { return FormatVerbose }
func (Verbose) Ext() string  { return ".fasta" }
func (Verbose) Format(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "%s\n%d at %d-%d\n%s: %s\n%s: %s\n\n",
		e.Motif, e.Index, e.Start, e.End, LeftLabel, e.Left, RightLabel, e.Right)
	return err
}

// JSONL writes one JSON object per occurrence.
type JSONL struct{}

func (JSONL) Name() string { return FormatJSONL }
func (JSONL) Ext() string  { return ".jsonl" }
func (JSONL) Format(w io.Writer, e Entry) error {
	return json.NewEncoder(w).Encode(e)
}

// Formatter registry (name → formatter). Last registration wins.
var formatters = map[string]Formatter{}

func init() {
	Register(Compact{})
	Register(Verbose{})
	Register(JSONL{})
}

// Register adds f under f.Name().
func Register(f Formatter) { formatters[f.Name()] = f }

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, errors.Newf("unknown output format %q (no formatter registered)", name)
	}
	return f, nil
}

// Names lists registered formats, sorted.
func Names() []string {
	out := make([]string, 0, len(formatters))
	for n := range formatters {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

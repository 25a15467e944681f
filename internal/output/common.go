package output

import (
	"drach/core/motif"
)

// Format names.
const (
	FormatCompact = "compact"
	FormatVerbose = "verbose"
	FormatJSONL   = "jsonl"
)

// Labels used by the verbose layout. Keep these as the single source of truth.
const (
	LeftLabel  = "Left"
	RightLabel = "Right"
)

// Entry is what a formatter receives for one occurrence. Start is 1-based and
// End inclusive, so a motif at [24,29) reads as 25-29.
type Entry struct {
	RecordID string `json:"record"`
	Index    int    `json:"index"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Motif    string `json:"motif"`
	Left     string `json:"left"`
	Right    string `json:"right"`
}

// NewEntry converts a 0-based occurrence and its flanks.
func NewEntry(recordID string, o motif.Occurrence, left, right string) Entry {
	return Entry{
		RecordID: recordID,
		Index:    o.Index + 1,
		Start:    o.Start + 1,
		End:      o.End,
		Motif:    o.Text,
		Left:     left,
		Right:    right,
	}
}

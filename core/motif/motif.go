// core/motif/motif.go
package motif

/* --------------------------- base bit table ---------------------------- */

var baseMask [256]byte // bit0=A bit1=C bit2=G bit3=U

func init() {
	set := func(c byte, bits byte) { baseMask[c] = bits }
	set('A', 1) // 0001
	set('C', 2) // 0010
	set('G', 4) // 0100
	set('U', 8) // 1000
}

/* ------------------------------ pattern -------------------------------- */

// Pattern is DRACH: [AGU][AG]AC[ACU].
const Pattern = "DRACH"

// Length is the number of bases one occurrence spans.
const Length = len(Pattern)

// positions holds the allowed-base mask per motif position.
var positions = [Length]byte{
	1 | 4 | 8, // D = A/G/U
	1 | 4,     // R = A/G
	1,         // A
	2,         // C
	1 | 2 | 8, // H = A/C/U
}

// Occurrence is one match over a record payload, [Start,End) half-open.
// Index is the rank among the record's occurrences in Start order.
type Occurrence struct {
	Index int
	Start int
	End   int
	Text  string
}

// Overlaps reports whether the occurrence's span intersects [start,end).
func (o Occurrence) Overlaps(start, end int) bool {
	return o.Start < end && start < o.End
}

// Match reports whether window (exactly Length bases) matches the motif.
// Bases outside {A,C,G,U} never match.
func Match(window []byte) bool {
	if len(window) != Length {
		return false
	}
	// fast reject on the two fixed positions
	if window[2] != 'A' || window[3] != 'C' {
		return false
	}
	for i, b := range window {
		if baseMask[b]&positions[i] == 0 {
			return false
		}
	}
	return true
}

// MatchAt reports whether a motif starts at payload[i].
func MatchAt(payload []byte, i int) bool {
	if i < 0 || i+Length > len(payload) {
		return false
	}
	return Match(payload[i : i+Length])
}

// Scan returns all non-overlapping occurrences, leftmost first. After a match
// at p the search resumes at p+Length, so the walk is a single linear pass.
func Scan(payload []byte) []Occurrence {
	var out []Occurrence
	for i := 0; i+Length <= len(payload); {
		if !MatchAt(payload, i) {
			i++
			continue
		}
		out = append(out, Occurrence{
			Index: len(out),
			Start: i,
			End:   i + Length,
			Text:  string(payload[i : i+Length]),
		})
		i += Length
	}
	return out
}

// Contains reports whether payload holds at least one occurrence.
func Contains(payload []byte) bool {
	for i := 0; i+Length <= len(payload); i++ {
		if MatchAt(payload, i) {
			return true
		}
	}
	return false
}

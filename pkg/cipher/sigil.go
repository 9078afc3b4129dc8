package cipher

import "strings"

// SigilState is the slice of player state a decoded sigil can unlock.
type SigilState interface {
	HasFlag(id string) bool
	SetFlag(id string)
	LogEvent(text string)
}

// sigils maps a phrase hidden in decoded text to the flag it unlocks.
var sigils = []struct {
	phrase  string
	flag    string
	logLine string
}{
	{"EMBER", "ember_phrase", "Decoded ember phrase"},
	{"LATTICE", "lattice_sigil", "Decoded lattice sigil"},
}

// ScanSigils checks decoded text for known phrases, case-insensitively, and
// sets the matching flags. Each sigil fires at most once per session; the
// checks are independent, so one decode may unlock both.
func ScanSigils(gs SigilState, decoded string) {
	upper := strings.ToUpper(decoded)
	for _, s := range sigils {
		if strings.Contains(upper, s.phrase) && !gs.HasFlag(s.flag) {
			gs.SetFlag(s.flag)
			gs.LogEvent(s.logLine)
		}
	}
}

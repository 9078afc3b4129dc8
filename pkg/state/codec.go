package state

import "sort"

// Record is the durable form of a State. Sets are serialized as sorted
// sequences so identical states always produce identical records; the log
// keeps insertion order. Field order in the document is not significant.
type Record struct {
	Handle     string   `json:"handle,omitempty"`
	Location   string   `json:"location,omitempty"`
	Inventory  []string `json:"inventory,omitempty"`
	Scripts    []string `json:"scripts,omitempty"`
	Flags      []string `json:"flags,omitempty"`
	Discovered []string `json:"discovered,omitempty"`
	Log        []string `json:"log,omitempty"`
	Visited    []string `json:"visited,omitempty"`
	LastCipher string   `json:"last_cipher,omitempty"`
	Ended      bool     `json:"ended,omitempty"`
}

// Snapshot converts live state into its durable record.
func Snapshot(s *State) *Record {
	return &Record{
		Handle:     s.Handle,
		Location:   s.Location,
		Inventory:  sortedKeys(s.Inventory),
		Scripts:    sortedKeys(s.Scripts),
		Flags:      sortedKeys(s.Flags),
		Discovered: sortedKeys(s.Discovered),
		Log:        append([]string(nil), s.Log...),
		Visited:    sortedKeys(s.Visited),
		LastCipher: s.LastCipher,
		Ended:      s.Ended,
	}
}

// Restore rebuilds a valid State from a record. Absent fields take the
// fresh-state defaults, and the current location is always re-added to the
// discovered set.
func Restore(r *Record) *State {
	s := New(r.Handle)
	if r.Location != "" {
		s.Location = r.Location
	}
	s.Inventory = toSet(r.Inventory)
	s.Scripts = toSet(r.Scripts)
	s.Flags = toSet(r.Flags)
	s.Discovered = toSet(r.Discovered)
	s.Visited = toSet(r.Visited)
	if r.Log != nil {
		s.Log = append([]string(nil), r.Log...)
	}
	s.LastCipher = r.LastCipher
	s.Ended = r.Ended
	s.Discovered[s.Location] = true
	return s
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

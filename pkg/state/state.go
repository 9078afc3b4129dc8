package state

// Fresh-state defaults. A missing save field falls back to these.
const (
	DefaultHandle   = "ghost"
	DefaultLocation = "hub.home"
)

// State is the mutable record of a single play session. It is owned by the
// command loop and mutated in place; the engine is strictly single-threaded.
type State struct {
	Handle     string
	Location   string
	Inventory  map[string]bool
	Scripts    map[string]bool
	Flags      map[string]bool
	Discovered map[string]bool
	Visited    map[string]bool
	Log        []string
	LastCipher string
	Ended      bool
}

// New returns a fresh state at the start node. The start node is always
// discovered.
func New(handle string) *State {
	if handle == "" {
		handle = DefaultHandle
	}
	return &State{
		Handle:     handle,
		Location:   DefaultLocation,
		Inventory:  make(map[string]bool),
		Scripts:    make(map[string]bool),
		Flags:      make(map[string]bool),
		Discovered: map[string]bool{DefaultLocation: true},
		Visited:    make(map[string]bool),
		Log:        []string{},
	}
}

func (s *State) HasItem(id string) bool { return s.Inventory[id] }
func (s *State) HasFlag(id string) bool { return s.Flags[id] }

func (s *State) AddItem(id string)   { s.Inventory[id] = true }
func (s *State) AddScript(id string) { s.Scripts[id] = true }

// SetFlag marks a milestone. Flags are monotonic; there is no ClearFlag.
func (s *State) SetFlag(id string) { s.Flags[id] = true }

// Discover adds node ids to the discovered set and returns the subsequence
// that was actually new, in input order. Discovery never removes entries.
func (s *State) Discover(ids ...string) []string {
	var added []string
	for _, id := range ids {
		if !s.Discovered[id] {
			s.Discovered[id] = true
			added = append(added, id)
		}
	}
	return added
}

// LogEvent appends one line to the activity log.
func (s *State) LogEvent(text string) {
	s.Log = append(s.Log, text)
}

// Visit marks a node as visited and reports whether this was the first time.
func (s *State) Visit(id string) bool {
	if s.Visited[id] {
		return false
	}
	s.Visited[id] = true
	return true
}

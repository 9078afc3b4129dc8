// Package script maps script ids to deterministic world-state transitions.
// Effects are declarative records in a lookup table; Apply interprets them
// against the player state and never mutates on a blocked or unknown run.
package script

import (
	"fmt"
	"strings"
)

// GameState is the slice of player state a script effect can touch.
type GameState interface {
	HasItem(id string) bool
	HasFlag(id string) bool
	AddItem(id string)
	SetFlag(id string)
	Discover(ids ...string) []string
	LogEvent(text string)
}

// OutcomeKind tags the result of a script run.
type OutcomeKind string

const (
	// Applied means the effect ran and mutated state.
	Applied OutcomeKind = "applied"
	// AlreadyApplied means the idempotence guard held; nothing changed.
	AlreadyApplied OutcomeKind = "already_applied"
	// Blocked means a precondition was unmet; nothing changed.
	Blocked OutcomeKind = "blocked"
	// NoResponse means the script id is unknown; nothing changed.
	NoResponse OutcomeKind = "no_response"
)

// Outcome is the result of applying a script.
type Outcome struct {
	Kind       OutcomeKind
	Message    string
	NewSignals []string // node ids newly discovered by this run
	Missing    []string // unmet precondition items, in declared order
}

// Effect is the declarative description of one script. An empty guard means
// the script is safe to re-run (tracer re-resolves the mesh every time).
type Effect struct {
	GuardFlag  string   // already applied if this flag is set
	GuardItem  string   // already applied if this item is owned
	NeedItems  []string // required items, reported in this order when missing
	GrantFlag  string
	GrantItem  string
	Discovers  []string
	AppliedMsg string
	RepeatMsg  string
	BlockedMsg string // format string taking the missing items list
	LogLine    string
}

// Effects is the full script table of the drift world.
var Effects = map[string]Effect{
	"tracer": {
		GrantFlag:  "trace_open",
		Discovers:  []string{"market.node", "perimeter.gate"},
		AppliedMsg: "Tracer online. Mesh resolved.",
		LogLine:    "Tracer mapped the perimeter",
	},
	"spoof": {
		GuardItem:  "mask.dat",
		GrantItem:  "mask.dat",
		AppliedMsg: "Mask minted: mask.dat",
		RepeatMsg:  "Mask already minted.",
		LogLine:    "Minted mask.dat",
	},
	"sniffer": {
		GuardFlag:  "sniffer_run",
		GrantFlag:  "sniffer_run",
		Discovers:  []string{"weaver.den", "corp.audit", "lattice.cache"},
		AppliedMsg: "Sniffer pulse complete.",
		RepeatMsg:  "Sniffer already swept the quiet bands.",
		LogLine:    "Sniffer swept the quiet bands",
	},
	"splice": {
		GuardItem:  "token.key",
		NeedItems:  []string{"badge.sig", "mask.dat", "weaver.mark"},
		GrantItem:  "token.key",
		AppliedMsg: "Token forged: token.key",
		RepeatMsg:  "Token already forged.",
		BlockedMsg: "Splice failed. Missing: %s",
		LogLine:    "Spliced token.key",
	},
	"ghost": {
		GuardFlag:  "ghosted",
		NeedItems:  []string{"weaver.mark"},
		GrantFlag:  "ghosted",
		Discovers:  []string{"corp.audit"},
		AppliedMsg: "Ghost protocol active. Your trail is cold.",
		RepeatMsg:  "Ghost protocol already active.",
		BlockedMsg: "Ghost protocol requires %s.",
		LogLine:    "Ghosted the audit trail",
	},
	"fork": {
		GuardFlag:  "forked",
		GrantFlag:  "forked",
		Discovers:  []string{"core.relic"},
		AppliedMsg: "Relay forked. Core channel exposed.",
		RepeatMsg:  "Relay already forked.",
		LogLine:    "Forked the relay to the core",
	},
}

// Apply runs the script id against gs. Blocked and NoResponse outcomes leave
// gs untouched; AlreadyApplied outcomes leave it untouched by construction.
func Apply(gs GameState, id string) Outcome {
	e, ok := Effects[id]
	if !ok {
		return Outcome{Kind: NoResponse, Message: "Script returned no response."}
	}

	if e.GuardFlag != "" && gs.HasFlag(e.GuardFlag) {
		return Outcome{Kind: AlreadyApplied, Message: e.RepeatMsg}
	}
	if e.GuardItem != "" && gs.HasItem(e.GuardItem) {
		return Outcome{Kind: AlreadyApplied, Message: e.RepeatMsg}
	}

	var missing []string
	for _, item := range e.NeedItems {
		if !gs.HasItem(item) {
			missing = append(missing, item)
		}
	}
	if len(missing) > 0 {
		return Outcome{
			Kind:    Blocked,
			Message: fmt.Sprintf(e.BlockedMsg, strings.Join(missing, ", ")),
			Missing: missing,
		}
	}

	if e.GrantFlag != "" {
		gs.SetFlag(e.GrantFlag)
	}
	if e.GrantItem != "" {
		gs.AddItem(e.GrantItem)
	}
	added := gs.Discover(e.Discovers...)
	gs.LogEvent(e.LogLine)

	return Outcome{Kind: Applied, Message: e.AppliedMsg, NewSignals: added}
}

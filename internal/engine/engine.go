// Package engine resolves player commands into operations over the world
// graph, the player state, script effects and the save store. It produces
// plain prose; wrapping and styling belong to the caller.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/shlex"

	"github.com/ErebusAres/DriftShell/internal/storage"
	"github.com/ErebusAres/DriftShell/pkg/cipher"
	"github.com/ErebusAres/DriftShell/pkg/script"
	"github.com/ErebusAres/DriftShell/pkg/state"
	"github.com/ErebusAres/DriftShell/pkg/world"
)

// endingNode is the only node where the two ending commands resolve.
const endingNode = "core.relic"

const helpText = `Commands:
  help                 show this list
  scan                 list discovered nodes
  connect <node>       jump to a node
  ls                   list files in the node
  cat <file>           read a file
  download <file>      take a script or item
  run <script>         execute a script in your kit
  decode rot13|b64     decode the last cipher you read
  inventory            list your scripts and items
  profile              show your handle and status
  log                  review your activity
  home                 return to hub
  save                 write a save file
  load                 load save file
  quit                 exit`

// Engine is the single-threaded command loop core. One command is fully
// processed, including persistence I/O, before the next is read.
type Engine struct {
	world  *world.World
	st     *state.State
	store  storage.SaveStore
	logger *slog.Logger

	runTipShown bool
}

func New(w *world.World, st *state.State, store storage.SaveStore, logger *slog.Logger) *Engine {
	return &Engine{
		world:  w,
		st:     st,
		store:  store,
		logger: logger,
	}
}

func (e *Engine) State() *state.State { return e.st }

// Location returns the current node id, for the prompt line.
func (e *Engine) Location() string { return e.st.Location }

// Intro returns the opening banner and the description of the current node.
func (e *Engine) Intro() string {
	return "driftshell // local drift sim\n" +
		"Type help for commands. Type quit to exit.\n\n" +
		e.enterNode(e.st.Location)
}

// Execute runs one command line and returns its output. quit reports that
// the session should end. Every error is recovered here and surfaced as a
// one-line message; nothing mutates state on the error paths.
func (e *Engine) Execute(ctx context.Context, line string) (output string, quit bool) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return "Malformed command.", false
	}
	if len(tokens) == 0 {
		return "", false
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]
	e.logger.Debug("Command received", "cmd", cmd, "args", args)

	switch cmd {
	case "help", "?":
		return helpText, false
	case "scan":
		return e.cmdScan(), false
	case "connect", "go":
		return e.cmdConnect(args), false
	case "ls":
		return e.cmdLs(), false
	case "cat", "read":
		return e.cmdCat(args), false
	case "download":
		return e.cmdDownload(args), false
	case "run":
		return e.cmdRun(args), false
	case "decode":
		return e.cmdDecode(args), false
	case "inventory", "inv":
		return e.cmdInventory(), false
	case "profile":
		return e.cmdProfile(), false
	case "log":
		return e.cmdLog(), false
	case "home":
		return e.enterNode(e.world.Start), false
	case "save":
		return e.cmdSave(ctx), false
	case "load":
		return e.cmdLoad(ctx), false
	case "exfiltrate":
		return e.cmdExfiltrate(), false
	case "restore":
		return e.cmdRestore(), false
	case "quit", "exit", "q":
		return "", true
	default:
		return "Unknown command. Type help for options.", false
	}
}

// enterNode moves the player and returns the node header and description.
// First visits are logged.
func (e *Engine) enterNode(id string) string {
	e.st.Location = id
	e.st.Discover(id)
	if e.st.Visit(id) {
		e.st.LogEvent("Entered " + id)
	}
	node, _ := e.world.Node(id)
	return fmt.Sprintf(":: %s :: %s\n\n%s", id, node.Title, node.Desc)
}

func (e *Engine) currentFiles() map[string]world.File {
	node, _ := e.world.Node(e.st.Location)
	return node.Files
}

// needsText formats unmet requirements the way scan and connect report them.
func needsText(missingItems, missingFlags []string) string {
	var needs []string
	if len(missingItems) > 0 {
		needs = append(needs, "items: "+strings.Join(missingItems, ", "))
	}
	if len(missingFlags) > 0 {
		needs = append(needs, "signals: "+strings.Join(missingFlags, ", "))
	}
	return strings.Join(needs, "; ")
}

func (e *Engine) cmdScan() string {
	var nodes []string
	for id := range e.st.Discovered {
		if id != e.st.Location {
			nodes = append(nodes, id)
		}
	}
	if len(nodes) == 0 {
		return "No other signals."
	}
	sort.Strings(nodes)

	lines := []string{"Signals:"}
	for _, id := range nodes {
		ok, missingItems, missingFlags := e.world.CanEnter(e.st, id)
		if ok {
			lines = append(lines, "- "+id+" [OPEN]")
		} else {
			lines = append(lines, "- "+id+" [LOCKED] ("+needsText(missingItems, missingFlags)+")")
		}
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) cmdConnect(args []string) string {
	if len(args) == 0 {
		return "Connect where?"
	}
	id := args[0]
	if !e.st.Discovered[id] {
		return "No signal by that name."
	}
	ok, missingItems, missingFlags := e.world.CanEnter(e.st, id)
	if !ok {
		return "Access denied. Missing " + needsText(missingItems, missingFlags) + "."
	}
	return e.enterNode(id)
}

func (e *Engine) cmdLs() string {
	files := e.currentFiles()
	if len(files) == 0 {
		return "No files in this node."
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("- %s (%s)", name, files[name].Type))
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) cmdCat(args []string) string {
	if len(args) == 0 {
		return "Read which file?"
	}
	name := args[0]
	f, ok := e.currentFiles()[name]
	if !ok {
		return "File not found."
	}
	if f.Cipher {
		e.st.LastCipher = f.Content
		e.st.LogEvent("Read cipher " + name)
	}
	return f.Content
}

func (e *Engine) cmdDownload(args []string) string {
	if len(args) == 0 {
		return "Download which file?"
	}
	name := args[0]
	f, ok := e.currentFiles()[name]
	if !ok {
		return "File not found."
	}
	if !f.Downloadable {
		return "Nothing to download here."
	}
	switch f.Type {
	case world.FileScript:
		if e.st.Scripts[f.ScriptID] {
			return "Script already in your kit."
		}
		e.st.AddScript(f.ScriptID)
		e.st.LogEvent("Downloaded script " + f.ScriptID)
		return "Downloaded script: " + f.ScriptID
	case world.FileItem:
		if e.st.Inventory[f.ItemID] {
			return "Item already in your kit."
		}
		e.st.AddItem(f.ItemID)
		e.st.LogEvent("Downloaded item " + f.ItemID)
		return "Downloaded item: " + f.ItemID
	default:
		return "Nothing to download here."
	}
}

func (e *Engine) cmdRun(args []string) string {
	if len(args) == 0 {
		return "Run which script?"
	}
	id := strings.TrimSuffix(args[0], ".s")

	if e.st.Scripts[id] {
		return e.applyScript(id)
	}
	// A script lying in the current node can be run without downloading it.
	for _, f := range e.currentFiles() {
		if f.Type == world.FileScript && f.ScriptID == id {
			out := e.applyScript(id)
			if !e.runTipShown {
				e.runTipShown = true
				out += "\n\nTip: download the script to keep it in your kit."
			}
			return out
		}
	}
	return "Script not found in your kit or this node."
}

func (e *Engine) applyScript(id string) string {
	outcome := script.Apply(e.st, id)
	e.logger.Debug("Script applied", "script", id, "outcome", string(outcome.Kind))

	out := outcome.Message
	if outcome.Kind == script.Applied && len(outcome.NewSignals) > 0 {
		label := "New signals: "
		if len(outcome.NewSignals) == 1 {
			label = "New signal: "
		}
		out += "\n\n" + label + strings.Join(outcome.NewSignals, ", ")
	}
	return out
}

func (e *Engine) cmdDecode(args []string) string {
	if len(args) == 0 {
		return "Usage: decode rot13|b64 <text>"
	}
	payload, err := cipher.Resolve(strings.TrimSpace(strings.Join(args[1:], " ")), e.st.LastCipher)
	if err != nil {
		return "No cached cipher. Read a cipher file first."
	}
	kind, err := cipher.ParseKind(args[0])
	if err != nil {
		return "Unknown cipher. Use rot13 or b64."
	}
	decoded, err := cipher.Decode(kind, payload)
	if err != nil {
		return "Base64 decode failed."
	}
	cipher.ScanSigils(e.st, decoded)
	return "Decoded:\n\n" + decoded
}

func (e *Engine) cmdInventory() string {
	if len(e.st.Scripts) == 0 && len(e.st.Inventory) == 0 {
		return "Your kit is empty."
	}
	var lines []string
	if len(e.st.Scripts) > 0 {
		lines = append(lines, "Scripts: "+strings.Join(sortedSet(e.st.Scripts), ", "))
	}
	if len(e.st.Inventory) > 0 {
		lines = append(lines, "Items: "+strings.Join(sortedSet(e.st.Inventory), ", "))
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) cmdProfile() string {
	lines := []string{
		"Handle: " + e.st.Handle,
		"Location: " + e.st.Location,
		fmt.Sprintf("Scripts: %d | Items: %d", len(e.st.Scripts), len(e.st.Inventory)),
		fmt.Sprintf("Signals: %d", len(e.st.Discovered)),
	}
	if e.st.Ended {
		lines = append(lines, "Status: session ended")
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) cmdLog() string {
	if len(e.st.Log) == 0 {
		return "Log is empty."
	}
	lines := make([]string, 0, len(e.st.Log))
	for _, entry := range e.st.Log {
		lines = append(lines, "- "+entry)
	}
	return strings.Join(lines, "\n")
}

func (e *Engine) cmdSave(ctx context.Context) string {
	rec := state.Snapshot(e.st)
	if err := e.store.Save(ctx, rec); err != nil {
		e.logger.Error("Save failed", "error", err)
		return "Save failed."
	}
	return "Save written."
}

// cmdLoad is all-or-nothing: on any failure the in-memory state is left
// exactly as it was.
func (e *Engine) cmdLoad(ctx context.Context) string {
	rec, err := e.store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoSave) {
			return "No save file found."
		}
		e.logger.Error("Load failed", "error", err)
		return "Failed to load save file."
	}
	e.st = state.Restore(rec)
	return "Save loaded.\n\n" + e.enterNode(e.st.Location)
}

func (e *Engine) cmdExfiltrate() string {
	if e.st.Location != endingNode {
		return "No target to exfiltrate here."
	}
	e.st.Ended = true
	e.st.LogEvent("Ending: exfiltrate")
	return "You lift the relic into your shell. The Drift goes quiet behind you.\n" +
		"A new story begins, sealed from the old net."
}

func (e *Engine) cmdRestore() string {
	if e.st.Location != endingNode {
		return "No target to restore here."
	}
	e.st.Ended = true
	e.st.LogEvent("Ending: restore")
	return "You bind the relic back to the Drift. The net exhales.\n" +
		"The archive sleeps, but its signal will haunt the edges."
}

func sortedSet(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

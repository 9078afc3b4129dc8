package world

// StateView is the minimal view of player state needed to evaluate a gate.
// This keeps pkg/world free of a dependency on pkg/state.
type StateView interface {
	HasItem(id string) bool
	HasFlag(id string) bool
}

// CanEnter reports whether the gate on nodeID is satisfied by the given
// state. Missing items and flags are returned in the node's declared
// requirement order. The call is pure; callers guarantee nodeID is defined.
func (w *World) CanEnter(view StateView, nodeID string) (bool, []string, []string) {
	node, ok := w.Nodes[nodeID]
	if !ok {
		return false, nil, nil
	}
	var missingItems, missingFlags []string
	for _, item := range node.Entry.Items {
		if !view.HasItem(item) {
			missingItems = append(missingItems, item)
		}
	}
	for _, flag := range node.Entry.Flags {
		if !view.HasFlag(flag) {
			missingFlags = append(missingFlags, flag)
		}
	}
	return len(missingItems) == 0 && len(missingFlags) == 0, missingItems, missingFlags
}

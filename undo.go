package main

// History keeps bounded undo/redo stacks of document snapshots. The
// undo stack always holds at least the initial snapshot; Undo never
// pops past it. Every push clears the redo stack and evicts the oldest
// entry once the stack exceeds its limit.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	limit     int
}

func NewHistory(limit int, initial Snapshot) *History {
	if limit <= 0 {
		limit = historyLimit
	}
	return &History{
		undoStack: []Snapshot{initial},
		limit:     limit,
	}
}

// Push records the snapshot unconditionally (the forced path).
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	h.redoStack = h.redoStack[:0]
	if len(h.undoStack) > h.limit {
		h.undoStack = h.undoStack[1:]
	}
}

// PushCoalescing records the snapshot unless it is structurally equal
// to the current top entry. A discarded duplicate leaves the redo
// stack untouched.
func (h *History) PushCoalescing(s Snapshot) {
	if snapshotsEqual(s, h.undoStack[len(h.undoStack)-1]) {
		return
	}
	h.Push(s)
}

// Undo steps back one entry and returns the snapshot that is now
// current. Returns false at the one-entry floor.
func (h *History) Undo() (Snapshot, bool) {
	if len(h.undoStack) <= 1 {
		return Snapshot{}, false
	}
	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)
	return h.undoStack[len(h.undoStack)-1], true
}

// Redo re-applies the most recently undone snapshot.
func (h *History) Redo() (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	top := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, top)
	return top, true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 1
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

func (h *History) Depth() int {
	return len(h.undoStack)
}

func (h *History) RedoDepth() int {
	return len(h.redoStack)
}

// snapshotsEqual compares every element field in order plus the
// selection. TextElement has only comparable fields, so element
// comparison is plain struct equality.
func snapshotsEqual(a, b Snapshot) bool {
	if a.SelectedID != b.SelectedID || len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if a.Elements[i] != b.Elements[i] {
			return false
		}
	}
	return true
}

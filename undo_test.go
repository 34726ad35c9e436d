package main

import (
	"fmt"
	"testing"
)

func makeSnapshot(n int) Snapshot {
	return Snapshot{
		Elements: []TextElement{{
			ID:   0,
			Text: fmt.Sprintf("state %d", n),
			Style: Style{
				FontFamily: defaultFontFamily,
				FontSize:   defaultFontSize,
			},
		}},
		SelectedID: -1,
	}
}

func TestUndoFloor(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	if _, ok := h.Undo(); ok {
		t.Fatal("undo at the one-entry floor should be a no-op")
	}
	if h.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", h.Depth())
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	h.Push(makeSnapshot(1))
	if _, ok := h.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if h.RedoDepth() != 1 {
		t.Fatalf("redo depth = %d, want 1", h.RedoDepth())
	}
	h.Push(makeSnapshot(2))
	if h.RedoDepth() != 0 {
		t.Fatalf("redo depth after push = %d, want 0", h.RedoDepth())
	}
}

func TestCoalescingSkipsDuplicate(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	h.PushCoalescing(makeSnapshot(0))
	if h.Depth() != 1 {
		t.Fatalf("depth = %d, want 1 after duplicate push", h.Depth())
	}
}

func TestCoalescingDiscardPreservesRedo(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	h.Push(makeSnapshot(1))
	if _, ok := h.Undo(); !ok {
		t.Fatal("undo failed")
	}
	// Current top is state 0 again; pushing an equal snapshot must not
	// clear the redo stack.
	h.PushCoalescing(makeSnapshot(0))
	if !h.CanRedo() {
		t.Fatal("discarded duplicate cleared the redo stack")
	}
	if h.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", h.Depth())
	}
}

func TestForcedAlwaysPushes(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	h.Push(makeSnapshot(1))
	h.Push(makeSnapshot(1))
	if h.Depth() != 3 {
		t.Fatalf("depth = %d, want 3: forced pushes must not coalesce", h.Depth())
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	for i := 1; i <= historyLimit+10; i++ {
		h.Push(makeSnapshot(i))
	}
	if h.Depth() != historyLimit {
		t.Fatalf("depth = %d, want %d", h.Depth(), historyLimit)
	}
	// The oldest surviving entry should be state 11, not the initial.
	bottom := h.undoStack[0]
	if bottom.Elements[0].Text != "state 11" {
		t.Fatalf("oldest entry = %q, want %q", bottom.Elements[0].Text, "state 11")
	}
}

func TestUndoRedoInverse(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	h.Push(makeSnapshot(1))
	h.Push(makeSnapshot(2))

	before := h.undoStack[len(h.undoStack)-1]
	s, ok := h.Undo()
	if !ok || !snapshotsEqual(s, makeSnapshot(1)) {
		t.Fatalf("undo returned %+v, want state 1", s)
	}
	s, ok = h.Redo()
	if !ok || !snapshotsEqual(s, before) {
		t.Fatal("redo did not restore the pre-undo state")
	}
}

func TestRedoEmptyNoOp(t *testing.T) {
	h := NewHistory(historyLimit, makeSnapshot(0))
	if _, ok := h.Redo(); ok {
		t.Fatal("redo with an empty redo stack should be a no-op")
	}
}

func TestSnapshotsEqual(t *testing.T) {
	a := makeSnapshot(1)
	b := makeSnapshot(1)
	if !snapshotsEqual(a, b) {
		t.Fatal("identical snapshots reported unequal")
	}
	b.Elements[0].Style.Bold = true
	if snapshotsEqual(a, b) {
		t.Fatal("style change not detected")
	}
	b = makeSnapshot(1)
	b.SelectedID = 0
	if snapshotsEqual(a, b) {
		t.Fatal("selection change not detected")
	}
	b = makeSnapshot(1)
	b.Elements = nil
	if snapshotsEqual(a, b) {
		t.Fatal("element count change not detected")
	}
}

package main

import (
	"strings"
	"testing"
)

// stubMeasurer gives fixed per-cell metrics so hit tests are
// deterministic without real font rasterization.
type stubMeasurer struct{}

func (stubMeasurer) Measure(text string, st Style) (float64, float64) {
	lines := strings.Split(text, "\n")
	var w int
	for _, line := range lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return float64(w) * cellWidth, float64(len(lines)) * cellHeight
}

func newTestEditor() *Editor {
	return NewEditor(stubMeasurer{})
}

func TestAddTextEntersEditSession(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()

	s := ed.Session()
	if s == nil {
		t.Fatal("AddText did not open an edit session")
	}
	if s.ElementID != el.ID || s.Buffer != defaultElementText {
		t.Fatalf("session = %+v, want element %d with buffer %q", s, el.ID, defaultElementText)
	}
	if ed.SelectedID() != el.ID {
		t.Fatalf("selected = %d, want %d", ed.SelectedID(), el.ID)
	}
	if ed.history.Depth() != 2 {
		t.Fatalf("history depth = %d, want 2 (initial + add)", ed.history.Depth())
	}
}

func TestAddUndoRedo(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	if el.ID != 0 {
		t.Fatalf("first id = %d, want 0", el.ID)
	}

	ed.Undo()
	if ed.canvas.Len() != 0 {
		t.Fatalf("after undo canvas has %d elements, want 0", ed.canvas.Len())
	}
	if ed.Session() != nil {
		t.Fatal("session should be discarded when its element is undone away")
	}

	ed.Redo()
	restored := ed.canvas.FindByID(0)
	if restored == nil {
		t.Fatal("redo did not restore the element")
	}
	if restored.Text != "Tap to Edit" {
		t.Fatalf("restored text = %q, want %q", restored.Text, "Tap to Edit")
	}
}

func TestBoldToggleTwiceIsTwoEntries(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()
	base := ed.history.Depth()

	ed.ToggleBold()
	if got := ed.canvas.FindByID(el.ID); !got.Style.Bold {
		t.Fatal("first toggle did not set bold")
	}
	if ed.history.Depth() != base+1 {
		t.Fatalf("depth = %d, want %d", ed.history.Depth(), base+1)
	}

	ed.ToggleBold()
	if got := ed.canvas.FindByID(el.ID); got.Style.Bold {
		t.Fatal("second toggle did not clear bold")
	}
	if ed.history.Depth() != base+2 {
		t.Fatalf("depth = %d, want %d: toggles must not coalesce", ed.history.Depth(), base+2)
	}
}

func TestTapOutsideCommitsEdit(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.TextChanged("Hi")

	ed.TapBackground(el.X+5000, el.Y+5000)

	if ed.Session() != nil {
		t.Fatal("session should end on tap outside")
	}
	if got := ed.canvas.FindByID(el.ID); got.Text != "Hi" {
		t.Fatalf("committed text = %q, want %q", got.Text, "Hi")
	}
	if ed.SelectedID() != -1 {
		t.Fatalf("selected = %d, want -1", ed.SelectedID())
	}
}

func TestTapInsideEditRegionIgnored(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.TextChanged("Hi")
	depth := ed.history.Depth()

	ed.TapBackground(el.X+1, el.Y+1)

	s := ed.Session()
	if s == nil || s.Buffer != "Hi" {
		t.Fatal("tap inside the edit region must leave the session alone")
	}
	if got := ed.canvas.FindByID(el.ID); got.Text != defaultElementText {
		t.Fatalf("element text = %q, committed too early", got.Text)
	}
	if ed.history.Depth() != depth {
		t.Fatalf("depth changed from %d to %d", depth, ed.history.Depth())
	}
}

func TestDragRecordsOnceAtEnd(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()
	baseX, baseY := el.X, el.Y
	depth := ed.history.Depth()

	ed.DragMove(el.ID, 10, 5)
	ed.DragMove(el.ID, 5, 5)
	if ed.history.Depth() != depth {
		t.Fatal("drag frames must not be recorded")
	}

	ed.DragEnd(el.ID)
	if ed.history.Depth() != depth+1 {
		t.Fatalf("depth = %d, want %d: one entry per drag", ed.history.Depth(), depth+1)
	}
	got := ed.canvas.FindByID(el.ID)
	if got.X != baseX+15 || got.Y != baseY+10 {
		t.Fatalf("position = (%v,%v), want (%v,%v)", got.X, got.Y, baseX+15, baseY+10)
	}

	ed.Undo()
	back := ed.canvas.FindByID(el.ID)
	if back.X != baseX || back.Y != baseY {
		t.Fatalf("undo position = (%v,%v), want (%v,%v)", back.X, back.Y, baseX, baseY)
	}
}

func TestTapSelectedElementBeginsEdit(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()
	depth := ed.history.Depth()

	ed.TapElement(el.ID)

	s := ed.Session()
	if s == nil || s.ElementID != el.ID {
		t.Fatal("tapping the selected element should begin editing it")
	}
	if ed.history.Depth() != depth {
		t.Fatal("entering edit mode must not be a history step")
	}
}

func TestTapOtherElementCommitsAndSelects(t *testing.T) {
	ed := newTestEditor()
	first := ed.AddTextAt(0, 0)
	firstID := first.ID
	ed.Submit()
	second := ed.AddTextAt(500, 500)
	secondID := second.ID
	ed.Submit()

	ed.TapElement(firstID)
	ed.BeginEdit(firstID)
	ed.TextChanged("edited")

	ed.TapElement(secondID)

	if got := ed.canvas.FindByID(firstID); got.Text != "edited" {
		t.Fatalf("first element text = %q, want committed %q", got.Text, "edited")
	}
	if ed.Session() != nil {
		t.Fatal("session should not survive selecting another element")
	}
	if ed.SelectedID() != secondID {
		t.Fatalf("selected = %d, want %d", ed.SelectedID(), secondID)
	}
}

func TestUndoWhileEditingSyncsBuffer(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()
	ed.ToggleBold()

	ed.TapElement(el.ID) // begins edit
	ed.TextChanged("draft")

	ed.Undo() // back to the pre-bold snapshot; element still exists

	s := ed.Session()
	if s == nil {
		t.Fatal("session should survive a restore that keeps its element")
	}
	if s.Buffer != defaultElementText {
		t.Fatalf("buffer = %q, want refreshed %q", s.Buffer, defaultElementText)
	}
	if got := ed.canvas.FindByID(el.ID); got.Style.Bold {
		t.Fatal("bold should be undone")
	}
}

func TestDeselectImpliesCommit(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.TextChanged("abc")

	ed.Deselect()

	if got := ed.canvas.FindByID(el.ID); got.Text != "abc" {
		t.Fatalf("text = %q, want %q", got.Text, "abc")
	}
	if ed.Session() != nil || ed.SelectedID() != -1 {
		t.Fatal("deselect should end the session and clear the selection")
	}
}

func TestSubmitRecordsCommit(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	depth := ed.history.Depth()

	ed.TextChanged("hello")
	ed.Submit()

	if got := ed.canvas.FindByID(el.ID); got.Text != "hello" {
		t.Fatalf("text = %q, want %q", got.Text, "hello")
	}
	if ed.history.Depth() != depth+1 {
		t.Fatalf("depth = %d, want %d", ed.history.Depth(), depth+1)
	}

	// Submitting unchanged text coalesces away.
	ed.TapElement(el.ID)
	ed.Submit()
	if ed.history.Depth() != depth+1 {
		t.Fatal("no-change submit should not create an entry")
	}
}

func TestCancelEditDiscardsBuffer(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()
	ed.TapElement(el.ID)
	ed.TextChanged("thrown away")

	ed.CancelEdit()

	if ed.Session() != nil {
		t.Fatal("cancel should end the session")
	}
	if got := ed.canvas.FindByID(el.ID); got.Text != defaultElementText {
		t.Fatalf("text = %q, cancel must not commit", got.Text)
	}
}

func TestFontSizeClamped(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()

	for i := 0; i < 100; i++ {
		ed.ChangeFontSize(fontSizeStep)
	}
	if got := ed.canvas.FindByID(el.ID); got.Style.FontSize != fontSizeMax {
		t.Fatalf("size = %v, want clamp at %v", got.Style.FontSize, fontSizeMax)
	}

	for i := 0; i < 200; i++ {
		ed.ChangeFontSize(-fontSizeStep)
	}
	if got := ed.canvas.FindByID(el.ID); got.Style.FontSize != fontSizeMin {
		t.Fatalf("size = %v, want clamp at %v", got.Style.FontSize, fontSizeMin)
	}
}

func TestFontFamilyAllowlist(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()

	ed.ChangeFontFamily("Go Mono")
	if got := ed.canvas.FindByID(el.ID); got.Style.FontFamily != "Go Mono" {
		t.Fatalf("family = %q, want %q", got.Style.FontFamily, "Go Mono")
	}

	ed.ChangeFontFamily("Comic Sans")
	if got := ed.canvas.FindByID(el.ID); got.Style.FontFamily != "Go Mono" {
		t.Fatalf("family = %q, unknown families must be ignored", got.Style.FontFamily)
	}
}

func TestIdsNeverReused(t *testing.T) {
	ed := newTestEditor()
	first := ed.AddText()
	ed.Undo()
	second := ed.AddText()

	if second.ID <= first.ID {
		t.Fatalf("ids %d then %d: must be strictly increasing, never reused", first.ID, second.ID)
	}
}

func TestStyleOpsWithoutSelectionNoOp(t *testing.T) {
	ed := newTestEditor()
	depth := ed.history.Depth()

	ed.ToggleBold()
	ed.ToggleItalic()
	ed.ToggleUnderline()
	ed.ChangeFontSize(fontSizeStep)
	ed.ChangeFontFamily("Go Mono")

	if ed.history.Depth() != depth {
		t.Fatal("style operations with no selection must be no-ops")
	}
}

func TestHitTestMissingSessionElementFailsSafe(t *testing.T) {
	ed := newTestEditor()
	ed.session = &EditSession{ElementID: 42, Buffer: "orphan"}

	ed.TapBackground(0, 0)

	if ed.Session() != nil {
		t.Fatal("orphan session should be discarded")
	}
	if ed.SelectedID() != -1 {
		t.Fatalf("selected = %d, want -1", ed.SelectedID())
	}
}

func TestRepeatedBackgroundTapCoalesces(t *testing.T) {
	ed := newTestEditor()
	ed.AddText()
	ed.Submit()

	ed.TapBackground(9999, 9999)
	depth := ed.history.Depth()
	ed.TapBackground(9999, 9999)

	if ed.history.Depth() != depth {
		t.Fatal("re-tapping the background with no state change must coalesce")
	}
}

func TestElementAtPicksTopmost(t *testing.T) {
	ed := newTestEditor()
	ed.AddTextAt(0, 0)
	ed.Submit()
	top := ed.AddTextAt(0, 0)
	topID := top.ID
	ed.Submit()

	if got := ed.ElementAt(1, 1); got != topID {
		t.Fatalf("ElementAt = %d, want topmost %d", got, topID)
	}
	if got := ed.ElementAt(1e9, 1e9); got != -1 {
		t.Fatalf("ElementAt on empty space = %d, want -1", got)
	}
}

func TestUndoRedoInverseOnDocument(t *testing.T) {
	ed := newTestEditor()
	el := ed.AddText()
	ed.Submit()
	ed.ToggleBold()
	ed.DragMove(el.ID, 30, 40)
	ed.DragEnd(el.ID)

	before := ed.snapshot()
	ed.Undo()
	ed.Redo()
	after := ed.snapshot()

	if !snapshotsEqual(before, after) {
		t.Fatalf("undo/redo round trip changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

package main

// Measurer reports the rendered extent of a text block in world pixels.
// The core only ever reads measurements; it never draws.
type Measurer interface {
	Measure(text string, st Style) (w, h float64)
}

// Editor owns the whole document state: the element store, the current
// selection, the active edit session and the history. Gesture methods
// are the only mutation entry points; each one decides whether it
// mutates the document, enters or leaves an edit session, and whether
// the result is recorded.
//
// Everything is single threaded: one gesture runs to completion before
// the next is dispatched.
type Editor struct {
	canvas     *Canvas
	history    *History
	measure    Measurer
	selectedID int
	session    *EditSession
}

func NewEditor(m Measurer) *Editor {
	e := &Editor{
		canvas:     NewCanvas(),
		measure:    m,
		selectedID: -1,
	}
	e.history = NewHistory(historyLimit, e.snapshot())
	return e
}

// Selection / edit session -------------------------------------------------

// Select marks an element as selected without touching the edit
// session. A missing id is a no-op.
func (e *Editor) Select(id int) {
	if e.canvas.FindByID(id) == nil {
		return
	}
	e.selectedID = id
}

// Deselect clears the selection. An active edit session is committed
// first; deselect implies commit.
func (e *Editor) Deselect() {
	e.CommitEdit()
	e.selectedID = -1
}

// BeginEdit opens an edit session on the element, committing any
// session already open on a different element.
func (e *Editor) BeginEdit(id int) {
	if e.session != nil && e.session.ElementID != id {
		e.CommitEdit()
	}
	el := e.canvas.FindByID(id)
	if el == nil {
		return
	}
	e.session = &EditSession{ElementID: id, Buffer: el.Text}
	e.selectedID = id
}

// CommitEdit writes the session buffer into the element's committed
// text and ends the session. No-op without a session; if the element
// is gone the session is discarded without writing.
func (e *Editor) CommitEdit() {
	if e.session == nil {
		return
	}
	if el := e.canvas.FindByID(e.session.ElementID); el != nil {
		el.Text = e.session.Buffer
	}
	e.session = nil
}

// CancelEdit discards the session buffer without committing.
func (e *Editor) CancelEdit() {
	e.session = nil
}

func (e *Editor) Session() *EditSession {
	return e.session
}

func (e *Editor) SelectedID() int {
	return e.selectedID
}

func (e *Editor) SelectedElement() *TextElement {
	if e.selectedID == -1 {
		return nil
	}
	return e.canvas.FindByID(e.selectedID)
}

// Gestures -----------------------------------------------------------------

// TapBackground handles a tap that the view resolved to empty canvas.
// While editing, the tap is first hit-tested against the session
// element's live extent: inside means the editing surface owns it.
func (e *Editor) TapBackground(x, y float64) {
	if e.session != nil && e.sessionContains(x, y) {
		return
	}
	e.CommitEdit()
	e.Deselect()
	e.recordCoalescing()
}

// TapElement handles a tap on an element. Tapping the already selected
// element enters edit mode; that transition is not itself a history
// step. Tapping anything else commits a live session and moves the
// selection.
func (e *Editor) TapElement(id int) {
	if e.session != nil && e.session.ElementID == id {
		return
	}
	if id == e.selectedID && e.session == nil {
		e.BeginEdit(id)
		return
	}
	e.CommitEdit()
	e.Select(id)
	e.recordCoalescing()
}

// DragMove applies a position delta mid-drag. Not recorded per frame.
func (e *Editor) DragMove(id int, dx, dy float64) {
	e.canvas.MoveBy(id, dx, dy)
}

// DragEnd records the final dragged position as one history step.
func (e *Editor) DragEnd(id int) {
	e.recordCoalescing()
}

// TextChanged replaces the session buffer with the new text. Typing
// mutates only the transient buffer; history is recorded when the
// session commits.
func (e *Editor) TextChanged(text string) {
	if e.session == nil {
		return
	}
	e.session.Buffer = text
}

// Submit commits the session and records the result.
func (e *Editor) Submit() {
	if e.session == nil {
		return
	}
	e.CommitEdit()
	e.recordCoalescing()
}

// AddText creates an element at the default position and immediately
// enters edit mode on it.
func (e *Editor) AddText() *TextElement {
	return e.AddTextAt(defaultElementX, defaultElementY)
}

// AddTextAt is AddText at a caller-chosen position.
func (e *Editor) AddTextAt(x, y float64) *TextElement {
	e.CommitEdit()
	el := e.canvas.AddAt(x, y)
	id := el.ID
	e.BeginEdit(id)
	e.recordCoalescing()
	return e.canvas.FindByID(id)
}

// Style operations. Each one is a deliberate discrete action, so the
// record is forced: two identical toggles stay two history entries.

func (e *Editor) ToggleBold() {
	e.mutateSelectedStyle(toggleBold)
}

func (e *Editor) ToggleItalic() {
	e.mutateSelectedStyle(toggleItalic)
}

func (e *Editor) ToggleUnderline() {
	e.mutateSelectedStyle(toggleUnderline)
}

func (e *Editor) ChangeFontFamily(name string) {
	e.mutateSelectedStyle(func(s Style) Style {
		return applyFontFamily(s, name)
	})
}

func (e *Editor) ChangeFontSize(delta float64) {
	e.mutateSelectedStyle(func(s Style) Style {
		return applyFontSize(s, delta)
	})
}

func (e *Editor) mutateSelectedStyle(fn func(Style) Style) {
	el := e.SelectedElement()
	if el == nil {
		return
	}
	el.Style = fn(el.Style)
	e.recordForced()
}

// History ------------------------------------------------------------------

func (e *Editor) Undo() {
	if s, ok := e.history.Undo(); ok {
		e.applySnapshot(s)
	}
}

func (e *Editor) Redo() {
	if s, ok := e.history.Redo(); ok {
		e.applySnapshot(s)
	}
}

func (e *Editor) snapshot() Snapshot {
	return Snapshot{
		Elements:   append([]TextElement(nil), e.canvas.elements...),
		SelectedID: e.selectedID,
	}
}

// recordCoalescing records the current state, suppressing duplicates.
// While an edit session is open the push is unconditional; the
// candidate is built from committed state only, never the live buffer.
func (e *Editor) recordCoalescing() {
	if e.session != nil {
		e.history.Push(e.snapshot())
		return
	}
	e.history.PushCoalescing(e.snapshot())
}

func (e *Editor) recordForced() {
	e.history.Push(e.snapshot())
}

// applySnapshot makes the snapshot the current document state. If an
// edit session is open, its buffer is refreshed from the restored
// element; if the element no longer exists, the session silently ends.
func (e *Editor) applySnapshot(s Snapshot) {
	e.canvas.restore(s.Elements)
	e.selectedID = s.SelectedID
	if e.session == nil {
		return
	}
	if el := e.canvas.FindByID(e.session.ElementID); el != nil {
		e.session.Buffer = el.Text
	} else {
		e.session = nil
	}
}

// Hit testing --------------------------------------------------------------

// ElementAt resolves a world point to the topmost element whose padded
// extent contains it, or -1. Insertion order is paint order, so the
// scan runs front to back.
func (e *Editor) ElementAt(x, y float64) int {
	for i := len(e.canvas.elements) - 1; i >= 0; i-- {
		el := &e.canvas.elements[i]
		text := el.Text
		if e.session != nil && e.session.ElementID == el.ID {
			text = e.session.Buffer
		}
		if e.extentContains(el.X, el.Y, text, el.Style, x, y) {
			return el.ID
		}
	}
	return -1
}

// sessionContains hit-tests the active session's element against a tap
// point. A vanished element reports "outside", failing safe to the
// commit path.
func (e *Editor) sessionContains(x, y float64) bool {
	el := e.canvas.FindByID(e.session.ElementID)
	if el == nil {
		return false
	}
	return e.extentContains(el.X, el.Y, e.session.Buffer, el.Style, x, y)
}

func (e *Editor) extentContains(ex, ey float64, text string, st Style, x, y float64) bool {
	w, h := e.measure.Measure(text, st)
	return x >= ex-hitPadding && x <= ex+w+hitPadding &&
		y >= ey-hitPadding && y <= ey+h+hitPadding
}

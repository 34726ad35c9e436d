package main

// TextElement is a single free-floating text object on the canvas.
// All fields are values; copying an element severs any sharing.
type TextElement struct {
	ID    int
	Text  string
	X     float64
	Y     float64
	Style Style
}

// Style holds the font attributes of one element. Mutations go through
// the pure functions in style.go, which return a new value.
type Style struct {
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Underline  bool
}

// Snapshot is one history entry: a deep copy of the document plus the
// selection. SelectedID is -1 when nothing is selected.
type Snapshot struct {
	Elements   []TextElement
	SelectedID int
}

// EditSession is the transient state while the user types into one
// element. Buffer is separate from the element's committed Text until
// the session commits.
type EditSession struct {
	ElementID int
	Buffer    string
}

package main

// Canvas owns the ordered set of text elements and the id counter.
// Insertion order is paint order, back to front. Ids are monotonic and
// never reused, even across undo/redo.
type Canvas struct {
	elements     []TextElement
	nextID       int
	defaultStyle Style
}

func NewCanvas() *Canvas {
	return &Canvas{
		elements: make([]TextElement, 0),
		defaultStyle: Style{
			FontFamily: defaultFontFamily,
			FontSize:   defaultFontSize,
		},
	}
}

// Add creates a new element with default text, position and style and
// appends it to the canvas.
func (c *Canvas) Add() *TextElement {
	return c.AddAt(defaultElementX, defaultElementY)
}

// AddAt creates a new element at the given world position.
func (c *Canvas) AddAt(x, y float64) *TextElement {
	el := TextElement{
		ID:    c.nextID,
		Text:  defaultElementText,
		X:     x,
		Y:     y,
		Style: c.defaultStyle,
	}
	c.nextID++
	c.elements = append(c.elements, el)
	return &c.elements[len(c.elements)-1]
}

// FindByID returns the live element with the given id, or nil.
func (c *Canvas) FindByID(id int) *TextElement {
	for i := range c.elements {
		if c.elements[i].ID == id {
			return &c.elements[i]
		}
	}
	return nil
}

// MoveBy shifts an element by a world-pixel delta. Positions are
// unbounded; a missing id is a no-op.
func (c *Canvas) MoveBy(id int, dx, dy float64) {
	if el := c.FindByID(id); el != nil {
		el.X += dx
		el.Y += dy
	}
}

// Elements returns the live element slice in insertion order. Callers
// must not hold the slice across mutations.
func (c *Canvas) Elements() []TextElement {
	return c.elements
}

func (c *Canvas) Len() int {
	return len(c.elements)
}

// restore replaces the canvas contents with a copy of the given
// elements. The id counter is left alone so ids are never reused.
func (c *Canvas) restore(elements []TextElement) {
	c.elements = append(c.elements[:0:0], elements...)
}

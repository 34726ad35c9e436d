package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleNavigation(key string) (tea.Model, tea.Cmd) {
	if m.zPanMode {
		return m.handlePan(key), nil
	}
	return m.handleCursorMove(key), nil
}

func (m *model) handlePan(key string) tea.Model {
	switch key {
	case "h", "left":
		m.panX--
	case "l", "right":
		m.panX++
	case "k", "up":
		m.panY--
	case "j", "down":
		m.panY++
	}
	return m
}

func (m *model) handleCursorMove(key string) tea.Model {
	switch key {
	case "h", "left":
		m.cursorX--
	case "l", "right":
		m.cursorX++
	case "k", "up":
		m.cursorY--
	case "j", "down":
		m.cursorY++
	}
	m.ensureCursorInBounds()
	return m
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	// Leave room for the status line
	maxY := m.height - 2
	if maxY < 0 {
		maxY = 0
	}
	if m.cursorY > maxY {
		m.cursorY = maxY
	}
}

// worldCoords converts the cursor cell to a world-pixel point at the
// center of the cell.
func (m *model) worldCoords() (float64, float64) {
	return m.cellToWorld(m.cursorX, m.cursorY)
}

func (m *model) cellToWorld(cx, cy int) (float64, float64) {
	x := (float64(cx+m.panX) + 0.5) * cellWidth
	y := (float64(cy+m.panY) + 0.5) * cellHeight
	return x, y
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.mode == ModeStartup {
		return m.renderStartup()
	}
	if m.help {
		return m.renderHelp()
	}

	canvasHeight := m.height - 1
	if canvasHeight < 1 {
		canvasHeight = 1
	}
	lines := m.renderCanvas(m.width, canvasHeight)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderCanvas composites every element onto a rune grid. World pixels
// map to cells at the fixed cell scale; the pan offset shifts the
// viewport without touching element positions.
func (m *model) renderCanvas(width, height int) []string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	ed := m.editor
	session := ed.Session()
	for _, el := range ed.canvas.Elements() {
		editing := session != nil && session.ElementID == el.ID
		text := el.Text
		if editing {
			text = session.Buffer
		}
		cx := int(el.X/cellWidth) - m.panX
		cy := int(el.Y/cellHeight) - m.panY
		lines := strings.Split(text, "\n")
		if editing {
			lines = insertEditCursor(lines, m.editCursorPos)
		}
		for i, line := range lines {
			putString(grid, cx, cy+i, line)
		}
		if el.ID == ed.SelectedID() && !editing {
			first := ""
			if len(lines) > 0 {
				first = lines[0]
			}
			putRune(grid, cx-1, cy, '[')
			putRune(grid, cx+len([]rune(first)), cy, ']')
		}
	}

	if m.mode == ModeNormal && !m.zPanMode {
		putRune(grid, m.cursorX, m.cursorY, '+')
	}

	out := make([]string, height)
	for y := range grid {
		out[y] = string(grid[y])
	}
	return out
}

// insertEditCursor places the caret rune at the rune offset pos within
// the joined lines.
func insertEditCursor(lines []string, pos int) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	for i := range out {
		runes := []rune(out[i])
		if pos <= len(runes) {
			out[i] = string(runes[:pos]) + "|" + string(runes[pos:])
			return out
		}
		pos -= len(runes) + 1 // consume the newline
	}
	if len(out) > 0 {
		out[len(out)-1] += "|"
	}
	return out
}

func putString(grid [][]rune, x, y int, s string) {
	for i, r := range []rune(s) {
		putRune(grid, x+i, y, r)
	}
}

func putRune(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func (m *model) renderStatusBar() string {
	ed := m.editor

	var left string
	switch m.mode {
	case ModeEditing:
		left = "EDIT  enter:newline  ctrl+s:commit  esc:cancel  ctrl+v:paste"
	case ModeMove:
		left = "MOVE  hjkl:move  enter:done"
	case ModeFileInput:
		left = "Export PNG as: " + m.filename + "_"
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmQuit:
			left = "Quit? (y/n)"
		case ConfirmNewCanvas:
			left = "Discard canvas and start over? (y/n)"
		}
	default:
		if m.zPanMode {
			left = "PAN  hjkl:pan  z:exit"
		} else {
			left = "a:add  space:tap  m:move  B/I/U:style  f:font  +/-:size  u:undo  R:redo  ?:help"
		}
	}

	var right string
	if el := ed.SelectedElement(); el != nil {
		flags := ""
		if el.Style.Bold {
			flags += "B"
		}
		if el.Style.Italic {
			flags += "I"
		}
		if el.Style.Underline {
			flags += "U"
		}
		right = fmt.Sprintf("#%d %s %.0fpt %s  ", el.ID, el.Style.FontFamily, el.Style.FontSize, flags)
	}
	right += fmt.Sprintf("undo:%d redo:%d", ed.history.Depth()-1, ed.history.RedoDepth())

	if m.errorMessage != "" {
		left = errorStyle.Render(m.errorMessage)
	} else if m.successMessage != "" {
		left = successStyle.Render(m.successMessage)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := " " + left + strings.Repeat(" ", gap) + right + " "
	return statusBarStyle.Width(m.width).Render(bar)
}

func (m *model) renderStartup() string {
	lines := []string{
		"",
		"  " + titleStyle.Render("CanvasText"),
		"",
		"  Free-floating text on an endless canvas.",
		"",
		"  'n'  New canvas",
		"  'q'  Quit",
		"",
		"  " + faintStyle.Render("config: ~/.canvastextrc"),
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderHelp() string {
	lines := []string{
		titleStyle.Render("CanvasText Help"),
		"",
		"Navigation:",
		"  h/j/k/l or arrows  Move the cursor",
		"  z                  Toggle pan mode (pan the viewport)",
		"",
		"Elements:",
		"  a                  Add a text element at the cursor (starts editing)",
		"  space / enter      Tap at the cursor; tapping a selected element edits it",
		"  m                  Move the element under the cursor with hjkl",
		"  mouse              Click to select, click again to edit, drag to move",
		"",
		"Style (selected element):",
		"  B / I / U          Toggle bold / italic / underline",
		"  f                  Next font family",
		"  + / -              Grow / shrink font size",
		"",
		"Editing:",
		"  type to edit, enter adds a line, ctrl+s commits, esc cancels",
		"  ctrl+v             Paste clipboard text into the buffer",
		"",
		"General:",
		"  u / R              Undo / redo",
		"  c                  Copy selected element's text to the clipboard",
		"  S                  Export the canvas as PNG",
		"  ?                  Toggle this help",
		"  q / ctrl+c         Quit",
		"",
		faintStyle.Render("press any key to close"),
	}
	return strings.Join(lines, "\n")
}

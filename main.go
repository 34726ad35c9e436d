package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	measurer, err := newFontMeasurer()
	if err != nil {
		log.Fatal(err)
	}
	p := tea.NewProgram(
		initialModel(measurer, loadConfig()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width   int
	height  int
	cursorX int
	cursorY int
	panX    int
	panY    int

	zPanMode bool
	mode     Mode
	help     bool

	editor   *Editor
	measurer *fontMeasurer
	config   *Config

	editCursorPos int
	moveID        int
	filename      string
	confirmAction ConfirmAction

	dragID    int
	dragLastX int
	dragLastY int
	dragMoved bool

	errorMessage   string
	successMessage string
}

func initialModel(measurer *fontMeasurer, config *Config) model {
	editor := NewEditor(measurer)
	editor.canvas.defaultStyle.FontFamily = config.FontFamily

	mode := ModeNormal
	if config.StartMenu {
		mode = ModeStartup
	}

	return model{
		mode:     mode,
		editor:   editor,
		measurer: measurer,
		config:   config,
		moveID:   -1,
		dragID:   -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch m.mode {
		case ModeStartup:
			return m.updateStartup(msg)
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeEditing:
			return m.updateEditing(msg)
		case ModeMove:
			return m.updateMove(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

// afterGesture mirrors the editor's session state into the TUI mode
// and keeps the edit caret inside the buffer. Gestures can open or
// close sessions as a side effect (tap to edit, undo discarding a
// session), so every dispatch funnels through here.
func (m *model) afterGesture() {
	s := m.editor.Session()
	switch {
	case s != nil && m.mode != ModeEditing:
		m.mode = ModeEditing
		m.editCursorPos = len([]rune(s.Buffer))
	case s != nil:
		if n := len([]rune(s.Buffer)); m.editCursorPos > n {
			m.editCursorPos = n
		}
	case m.mode == ModeEditing:
		m.mode = ModeNormal
	}
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) updateStartup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		m.mode = ModeNormal
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	case "n":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmNewCanvas
		return m, nil
	case "?":
		m.help = true
		return m, nil
	case "escape":
		m.zPanMode = false
		m.editor.Deselect()
		m.editor.recordCoalescing()
		return m, nil
	case "z":
		m.zPanMode = !m.zPanMode
		return m, nil
	case "h", "j", "k", "l", "left", "right", "up", "down":
		return m.handleNavigation(key)
	case "a":
		m.zPanMode = false
		m.clearMessages()
		wx, wy := m.worldCoords()
		m.editor.AddTextAt(wx, wy)
		m.afterGesture()
		return m, nil
	case " ", "enter":
		m.clearMessages()
		wx, wy := m.worldCoords()
		if id := m.editor.ElementAt(wx, wy); id != -1 {
			m.editor.TapElement(id)
		} else {
			m.editor.TapBackground(wx, wy)
		}
		m.afterGesture()
		return m, nil
	case "m":
		wx, wy := m.worldCoords()
		if id := m.editor.ElementAt(wx, wy); id != -1 {
			m.moveID = id
			m.mode = ModeMove
		}
		return m, nil
	case "B":
		m.editor.ToggleBold()
		return m, nil
	case "I":
		m.editor.ToggleItalic()
		return m, nil
	case "U":
		m.editor.ToggleUnderline()
		return m, nil
	case "f":
		if el := m.editor.SelectedElement(); el != nil {
			m.editor.ChangeFontFamily(nextFontFamily(el.Style.FontFamily))
		}
		return m, nil
	case "+", "=":
		m.editor.ChangeFontSize(fontSizeStep)
		return m, nil
	case "-", "_":
		m.editor.ChangeFontSize(-fontSizeStep)
		return m, nil
	case "u":
		m.clearMessages()
		m.editor.Undo()
		m.afterGesture()
		return m, nil
	case "R":
		m.clearMessages()
		m.editor.Redo()
		m.afterGesture()
		return m, nil
	case "c":
		if el := m.editor.SelectedElement(); el != nil {
			if err := writeClipboardText(el.Text); err != nil {
				m.errorMessage = "clipboard: " + err.Error()
			} else {
				m.successMessage = "Copied"
			}
		}
		return m, nil
	case "S":
		m.mode = ModeFileInput
		m.filename = "canvas"
		m.clearMessages()
		return m, nil
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.editor.Session()
	if session == nil {
		m.mode = ModeNormal
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyEscape:
		m.editor.CancelEdit()
		m.afterGesture()
		return m, nil
	case msg.Type == tea.KeyCtrlS:
		m.editor.Submit()
		m.afterGesture()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.insertIntoBuffer("\n")
		return m, nil
	case msg.Type == tea.KeyBackspace:
		if m.editCursorPos > 0 {
			runes := []rune(session.Buffer)
			m.editor.TextChanged(string(runes[:m.editCursorPos-1]) + string(runes[m.editCursorPos:]))
			m.editCursorPos--
		}
		return m, nil
	case msg.Type == tea.KeyDelete:
		runes := []rune(session.Buffer)
		if m.editCursorPos < len(runes) {
			m.editor.TextChanged(string(runes[:m.editCursorPos]) + string(runes[m.editCursorPos+1:]))
		}
		return m, nil
	case msg.String() == "left":
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
		return m, nil
	case msg.String() == "right":
		if m.editCursorPos < len([]rune(session.Buffer)) {
			m.editCursorPos++
		}
		return m, nil
	case msg.Type == tea.KeyCtrlV:
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = "clipboard: " + err.Error()
			return m, nil
		}
		m.insertIntoBuffer(cleanClipboardText(text))
		return m, nil
	default:
		keyStr := msg.String()
		if len([]rune(keyStr)) == 1 {
			m.insertIntoBuffer(keyStr)
		}
		return m, nil
	}
}

func (m *model) insertIntoBuffer(s string) {
	session := m.editor.Session()
	if session == nil || s == "" {
		return
	}
	runes := []rune(session.Buffer)
	m.editor.TextChanged(string(runes[:m.editCursorPos]) + s + string(runes[m.editCursorPos:]))
	m.editCursorPos += len([]rune(s))
}

func (m model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape":
		m.mode = ModeNormal
		m.moveID = -1
		return m, nil
	case "h", "left":
		m.editor.DragMove(m.moveID, -cellWidth, 0)
		return m, nil
	case "l", "right":
		m.editor.DragMove(m.moveID, cellWidth, 0)
		return m, nil
	case "k", "up":
		m.editor.DragMove(m.moveID, 0, -cellHeight)
		return m, nil
	case "j", "down":
		m.editor.DragMove(m.moveID, 0, cellHeight)
		return m, nil
	case "enter":
		m.editor.DragEnd(m.moveID)
		m.mode = ModeNormal
		m.moveID = -1
		return m, nil
	}
	return m, nil
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		return m, nil
	case msg.Type == tea.KeyEnter:
		if m.filename == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		path := m.config.GetSavePath(m.filename + ".png")
		if err := exportPNG(m.editor, m.measurer, path); err != nil {
			m.errorMessage = "Export failed: " + err.Error()
		} else {
			m.successMessage = "Exported " + path
		}
		m.mode = ModeNormal
		m.filename = ""
		return m, nil
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil
	default:
		keyStr := msg.String()
		if len([]rune(keyStr)) == 1 {
			m.filename += keyStr
		}
		return m, nil
	}
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewCanvas:
			m.editor = NewEditor(m.measurer)
			m.editor.canvas.defaultStyle.FontFamily = m.config.FontFamily
			m.mode = ModeNormal
			m.cursorX = 0
			m.cursorY = 0
			m.panX = 0
			m.panY = 0
			m.clearMessages()
			return m, nil
		}
	case "n", "N", "escape":
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal && m.mode != ModeEditing {
		return m, nil
	}
	wx, wy := m.cellToWorld(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragID = m.editor.ElementAt(wx, wy)
		m.dragLastX, m.dragLastY = msg.X, msg.Y
		m.dragMoved = false

	case msg.Action == tea.MouseActionMotion && m.dragID != -1:
		dx := float64(msg.X-m.dragLastX) * cellWidth
		dy := float64(msg.Y-m.dragLastY) * cellHeight
		if dx != 0 || dy != 0 {
			m.editor.DragMove(m.dragID, dx, dy)
			m.dragMoved = true
			m.dragLastX, m.dragLastY = msg.X, msg.Y
		}

	case msg.Action == tea.MouseActionRelease:
		m.clearMessages()
		switch {
		case m.dragID != -1 && m.dragMoved:
			m.editor.DragEnd(m.dragID)
		case m.dragID != -1:
			m.editor.TapElement(m.dragID)
		default:
			m.editor.TapBackground(wx, wy)
		}
		m.dragID = -1
		m.dragMoved = false
		m.afterGesture()
	}
	return m, nil
}

package builder

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/openapi"
	"github.com/flavono123/schemer/internal/ui/event"
	"github.com/flavono123/schemer/internal/ui/theme"
)

const (
	BUILDER_WIDTH_RATIO          = 0.5
	BUILDER_HEIGHT_BOTTOM_MARGIN = 6 // topbar 1 + border top, down 2 + ref 1 + help 1 + status 1
	BUILDER_INPUT_WIDTH          = 24
)

type mode uint

const (
	browsing mode = iota
	editing
	confirming
)

type Model struct {
	focus  bool
	fields []*field.Node

	// builder-only state, keyed by field id so it survives tree replacement
	collapsed map[string]bool
	cursorID  string
	hint      bool

	lines  []*Line
	cursor int
	vp     viewport.Model
	style  lipgloss.Style

	mode   mode
	input  textinput.Model
	target string

	keys keyMap
	help help.Model
}

func NewModel(fields []*field.Node) *Model {
	input := textinput.New()
	input.Placeholder = KEY_PLACEHOLDER
	input.Prompt = "key: "
	input.Width = BUILDER_INPUT_WIDTH
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.Blue())

	m := &Model{
		focus:     true,
		collapsed: map[string]bool{},
		vp:        viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Blue()),
		input: input,
		keys:  newKeyMap(),
		help:  help.New(),
	}
	// a new tree has no history yet
	m.keys.undo.SetEnabled(false)
	m.keys.redo.SetEnabled(false)
	m.setFields(fields, "")

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetFieldsMsg:
		m.keys.undo.SetEnabled(msg.CanUndo)
		m.keys.redo.SetEnabled(msg.CanRedo)
		m.setFields(msg.Fields, msg.Focus)
		return m, nil
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width) * BUILDER_WIDTH_RATIO)
		m.vp.Height = max(msg.Height-BUILDER_HEIGHT_BOTTOM_MARGIN, 1)
		m.help.Width = m.vp.Width
		m.scrollToCursor()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case editing:
			return m, m.updateEditing(msg)
		case confirming:
			return m, m.updateConfirming(msg)
		}
		return m, m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	line := m.curLine()

	switch {
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.addRoot):
		return event.Emit(event.AddRootMsg{})
	case key.Matches(msg, m.keys.undo):
		return event.Emit(event.UndoMsg{})
	case key.Matches(msg, m.keys.redo):
		return event.Emit(event.RedoMsg{})
	}

	if line == nil {
		return nil
	}

	if line.hint {
		if key.Matches(msg, m.keys.rename, m.keys.addChild) {
			return event.Emit(event.AddChildMsg{ID: line.ID()})
		}
		return nil
	}

	node := line.node
	switch {
	case key.Matches(msg, m.keys.fold):
		if node.IsObject() {
			m.collapsed[node.ID] = !m.collapsed[node.ID]
			m.rebuild()
		}
	case key.Matches(msg, m.keys.rename):
		return m.startEditing(node)
	case key.Matches(msg, m.keys.nextType):
		return event.Emit(event.RetypeMsg{ID: node.ID, Type: node.Type.Next()})
	case key.Matches(msg, m.keys.prevType):
		return event.Emit(event.RetypeMsg{ID: node.ID, Type: node.Type.Prev()})
	case key.Matches(msg, m.keys.addSibling):
		return event.Emit(event.AddSiblingMsg{ID: node.ID})
	case key.Matches(msg, m.keys.addChild):
		if !node.IsObject() {
			return event.Emit(event.SetStatusMsg{
				Message: "only nested fields can have children",
				Status:  event.Warn,
			})
		}
		delete(m.collapsed, node.ID)
		return event.Emit(event.AddChildMsg{ID: node.ID})
	case key.Matches(msg, m.keys.delete):
		m.mode = confirming
		m.target = node.ID
	}

	return nil
}

// every keystroke is a rename, like a controlled input
func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.done) {
		m.stopEditing()
		return nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == prev {
		return cmd
	}

	return tea.Batch(cmd, event.Emit(event.RenameMsg{ID: m.target, Key: m.input.Value()}))
}

func (m *Model) updateConfirming(msg tea.KeyMsg) tea.Cmd {
	target := m.target
	switch {
	case key.Matches(msg, m.keys.confirm):
		m.mode = browsing
		m.target = ""
		log.WithField("id", target).Debug("delete confirmed")
		return event.Emit(event.DeleteMsg{ID: target})
	case key.Matches(msg, m.keys.cancel):
		m.mode = browsing
		m.target = ""
	}
	return nil
}

func (m *Model) startEditing(node *field.Node) tea.Cmd {
	m.mode = editing
	m.target = node.ID
	m.input.SetValue(node.Key)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.mode = browsing
	m.target = ""
	m.input.Blur()
}

func (m *Model) View() string {
	content := m.renderLines()
	m.vp.SetContent(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
		m.renderBottomBar(),
	)
}

// Capturing reports whether key presses are text for the builder, so the
// root must not treat them as global shortcuts.
func (m *Model) Capturing() bool {
	return m.mode != browsing
}

func (m *Model) CursorID() string {
	return m.cursorID
}

// FocusField moves the cursor to id, expanding collapsed ancestors.
func (m *Model) FocusField(id string) bool {
	ancestors, ok := field.Ancestors(m.fields, id)
	if !ok {
		return false
	}
	for _, node := range ancestors {
		delete(m.collapsed, node.ID)
	}

	m.cursorID = id
	m.hint = false
	m.rebuild()
	return true
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

// utils

func (m *Model) setFields(fields []*field.Node, focus string) {
	m.fields = fields
	if focus != "" {
		m.cursorID = focus
		m.hint = false
	}

	// the field being edited or confirmed may be gone
	if m.mode != browsing {
		if node := field.Find(fields, m.target); node == nil {
			m.stopEditing()
		} else if m.mode == editing && node.Key != m.input.Value() {
			m.input.SetValue(node.Key)
		}
	}

	m.rebuild()
}

// rebuild recomputes the rows and puts the cursor back on cursorID. When the
// field is gone the cursor stays at the same row index.
func (m *Model) rebuild() {
	m.lines = buildLines(m.fields, m.collapsed)

	for i, line := range m.lines {
		if line.ID() == m.cursorID && line.hint == m.hint {
			m.cursor = i
			m.scrollToCursor()
			return
		}
	}

	m.cursor = min(m.cursor, len(m.lines)-1)
	m.cursor = max(m.cursor, 0)
	m.syncCursorID()
	m.scrollToCursor()
}

func (m *Model) moveCursor(delta int) {
	if len(m.lines) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.lines)-1)
	m.syncCursorID()
	m.scrollToCursor()
}

func (m *Model) syncCursorID() {
	if line := m.curLine(); line != nil {
		m.cursorID = line.ID()
		m.hint = line.hint
	} else {
		m.cursorID = ""
		m.hint = false
	}
}

func (m *Model) scrollToCursor() {
	if m.vp.Height <= 0 {
		return
	}
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *Model) curLine() *Line {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return nil
	}
	return m.lines[m.cursor]
}

func (m *Model) renderLines() string {
	if len(m.lines) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).
			Render("No fields yet. Press \"a\" to add a field.")
	}

	var result strings.Builder
	leftPadding := len(strconv.Itoa(len(m.lines)))
	for i, line := range m.lines {
		rendered := line.render(leftPadding, i == m.cursor, m.collapsed[line.ID()], !m.focus)
		if m.mode == editing && !line.hint && line.ID() == m.target {
			rendered = lipgloss.JoinHorizontal(lipgloss.Left,
				rendered,
				" ",
				m.input.View(),
			)
		}
		result.WriteString(lipgloss.NewStyle().MaxWidth(m.vp.Width).Render(rendered) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func (m *Model) renderTopBar() string {
	title := lipgloss.NewStyle().Margin(0, 1).Bold(true).Render("Builder")
	count := lipgloss.NewStyle().Foreground(theme.Subtext0()).
		Render(strconv.Itoa(field.Count(m.fields)) + " fields")
	return lipgloss.JoinHorizontal(lipgloss.Left, title, count)
}

func (m *Model) renderBottomBar() string {
	switch m.mode {
	case confirming:
		prompt := lipgloss.NewStyle().Foreground(theme.Red()).Render("Delete this field? ")
		return lipgloss.JoinHorizontal(lipgloss.Left, prompt, m.help.View(confirmKeyMap{m.keys}))
	case editing:
		return m.help.View(editKeyMap{m.keys})
	}

	ref := ""
	if line := m.curLine(); line != nil && !line.hint {
		if r, ok := openapi.Ref(m.fields, line.ID()); ok {
			ref = r.String()
		}
	}
	refStyle := lipgloss.NewStyle().Foreground(theme.Subtext0()).MaxWidth(m.vp.Width)
	return lipgloss.JoinVertical(lipgloss.Left,
		refStyle.Render(ref),
		m.help.View(m.keys),
	)
}

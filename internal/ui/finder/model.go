package finder

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemer/internal/ui/event"
	"github.com/flavono123/schemer/internal/ui/theme"
)

const (
	FINDER_WIDTH_DIV   = 3
	FINDER_MIN_WIDTH   = 30
	FINDER_LIST_HEIGHT = 10

	NO_MATCH = "No fields match."
)

// Model jumps to a field by fuzzy matching its dotted path.
type Model struct {
	keys    keyMap
	visible bool
	style   lipgloss.Style
	input   textinput.Model
	list    viewport.Model

	paths  fieldPaths
	hits   []hit
	cursor int
}

func NewModel() *Model {
	ti := textinput.New()
	ti.Placeholder = "Jump to field..."
	ti.Prompt = "/ "
	ti.Width = FINDER_MIN_WIDTH

	return &Model{
		keys: newKeyMap(),
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Mauve()).
			Padding(0, 1),
		input: ti,
		list:  viewport.New(FINDER_MIN_WIDTH, FINDER_LIST_HEIGHT),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		m.visible = true
		m.paths = collectPaths(msg.Fields)
		m.input.Reset()
		m.search()
		return m, m.input.Focus()
	case HideMsg:
		m.visible = false
		m.input.Blur()
		return m, nil
	case tea.WindowSizeMsg:
		m.list.Width = max(msg.Width/FINDER_WIDTH_DIV, FINDER_MIN_WIDTH)
		m.input.Width = m.list.Width - len(m.input.Prompt)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.pick):
		if m.cursor >= len(m.hits) {
			return nil
		}
		return tea.Batch(
			event.Emit(event.FocusFieldMsg{ID: m.hits[m.cursor].path.id}),
			Hide,
		)
	case key.Matches(msg, m.keys.hide):
		return Hide
	default:
		query := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != query {
			m.search()
		}
		return cmd
	}
	return nil
}

func (m *Model) View() string {
	return m.style.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().MarginBottom(1).Render(m.input.View()),
			m.list.View(),
		),
	)
}

func (m *Model) Visible() bool {
	return m.visible
}

// search reruns the query and puts the cursor back on the best hit.
func (m *Model) search() {
	m.hits = search(m.paths, m.input.Value())
	m.cursor = 0
	m.refresh()
	m.list.GotoTop()
}

func (m *Model) moveCursor(delta int) {
	if len(m.hits) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.hits)-1)
	m.refresh()

	switch {
	case m.cursor < m.list.YOffset:
		m.list.SetYOffset(m.cursor)
	case m.cursor >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m *Model) refresh() {
	if len(m.hits) == 0 {
		m.list.SetContent(lipgloss.NewStyle().Foreground(theme.Overlay0()).Render(NO_MATCH))
		return
	}

	rows := make([]string, len(m.hits))
	for i, h := range m.hits {
		rows[i] = h.render(m.list.Width, i == m.cursor)
	}
	m.list.SetContent(strings.Join(rows, "\n"))
}

package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/flavono123/schemer/internal/config"
	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/store"
	"github.com/flavono123/schemer/internal/ui/builder"
	"github.com/flavono123/schemer/internal/ui/event"
	"github.com/flavono123/schemer/internal/ui/finder"
	"github.com/flavono123/schemer/internal/ui/jsonview"
	"github.com/flavono123/schemer/internal/ui/theme"
)

const UPPER_20 = 0.2

type sessionState uint

const (
	builderView sessionState = iota
	previewView
)

type Model struct {
	state sessionState
	store *store.Store
	keys  keyMap
	help  help.Model

	builder *builder.Model
	view    *jsonview.Model
	finder  *finder.Model

	width  int
	height int

	statusMsg  string
	status     event.Status
	showStatus bool
}

func NewModel(s *store.Store, cfg config.Config) *Model {
	theme.SetFlavour(cfg.Flavour)

	fields := s.Fields()
	m := &Model{
		state:   builderView,
		store:   s,
		keys:    newKeyMap(),
		help:    help.New(),
		builder: builder.NewModel(fields),
		view:    jsonview.NewModel(fields, cfg.Format, cfg.Indent),
		finder:  finder.NewModel(),
	}
	m.view.Blur()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.builder.Update(msg)
		m.view.Update(msg)
		m.finder.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// edits
	case event.AddRootMsg:
		id := m.store.AddRoot()
		log.WithField("id", id).Debug("root field added")
		return m, m.sync(id)
	case event.AddSiblingMsg:
		id, found := m.store.AddSibling(msg.ID)
		return m, m.afterEdit("add sibling", msg.ID, found, id)
	case event.AddChildMsg:
		id, found := m.store.AddChild(msg.ID)
		return m, m.afterEdit("add child", msg.ID, found, id)
	case event.RenameMsg:
		found := m.store.Rename(msg.ID, msg.Key)
		return m, m.afterEdit("rename", msg.ID, found, "")
	case event.RetypeMsg:
		found := m.store.Retype(msg.ID, msg.Type)
		return m, m.afterEdit("retype", msg.ID, found, "")
	case event.DeleteMsg:
		found := m.store.Delete(msg.ID)
		return m, m.afterEdit("delete", msg.ID, found, "")
	case event.UndoMsg:
		if !m.store.Undo() {
			return m, m.setStatus("nothing to undo", event.Warn)
		}
		return m, m.sync("")
	case event.RedoMsg:
		if !m.store.Redo() {
			return m, m.setStatus("nothing to redo", event.Warn)
		}
		return m, m.sync("")

	case event.FocusFieldMsg:
		m.builder.FocusField(msg.ID)
		if m.state != builderView {
			m.switchView()
		}
		return m, nil

	case event.SetStatusMsg:
		return m, m.setStatus(msg.Message, msg.Status)
	case event.HideStatusMsg:
		m.showStatus = false
		return m, nil

	case finder.ShowMsg, finder.HideMsg:
		_, cmd := m.finder.Update(msg)
		return m, cmd
	}

	// everything else, e.g. cursor blinks, goes to whoever may be waiting for it
	_, bCmd := m.builder.Update(msg)
	cmds = append(cmds, bCmd)
	if m.finder.Visible() {
		_, fCmd := m.finder.Update(msg)
		cmds = append(cmds, fCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.forceQuit) {
		return tea.Quit
	}

	if m.finder.Visible() {
		_, cmd := m.finder.Update(msg)
		return cmd
	}

	if m.state == builderView && m.builder.Capturing() {
		_, cmd := m.builder.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	case key.Matches(msg, m.keys.showFinder):
		return finder.Show(m.store.Fields())
	case key.Matches(msg, m.keys.tabView):
		return m.switchView()
	case key.Matches(msg, m.keys.cycleMode):
		return m.view.CycleMode()
	}

	var cmd tea.Cmd
	if m.state == builderView {
		_, cmd = m.builder.Update(msg)
	} else {
		_, cmd = m.view.Update(msg)
	}
	return cmd
}

func (m *Model) View() string {
	if m.finder.Visible() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			UPPER_20,
			m.finder.View(),
			lipgloss.WithWhitespaceBackground(theme.Mantle()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.builder.View(),
			" ",
			m.view.View(),
		),
		m.renderStatusBar(),
	)
}

// Fields is the current tree.
func (m *Model) Fields() []*field.Node {
	return m.store.Fields()
}

// afterEdit syncs the panes when the edit landed. A missing id comes from a
// stale row and is ignored.
func (m *Model) afterEdit(action string, id string, found bool, focus string) tea.Cmd {
	entry := log.WithFields(log.Fields{
		"action":   action,
		"id":       id,
		"revision": m.store.Revision(),
	})
	if !found {
		entry.Debug("field not found, ignored")
		return nil
	}
	entry.Debug("field edited")
	return m.sync(focus)
}

// sync pushes the store's current tree to both panes.
func (m *Model) sync(focus string) tea.Cmd {
	fields := m.store.Fields()
	m.builder.Update(builder.SetFieldsMsg{
		Fields:  fields,
		Focus:   focus,
		CanUndo: m.store.CanUndo(),
		CanRedo: m.store.CanRedo(),
	})
	_, cmd := m.view.Update(jsonview.SetFieldsMsg{Fields: fields})
	return cmd
}

func (m *Model) switchView() tea.Cmd {
	if m.state == builderView {
		m.state = previewView
		m.builder.Blur()
		return m.view.Focus()
	}
	m.state = builderView
	m.view.Blur()
	return m.builder.Focus()
}

func (m *Model) setStatus(message string, status event.Status) tea.Cmd {
	m.statusMsg = message
	m.status = status
	m.showStatus = true
	return event.ShowStatus()
}

func (m *Model) renderStatusBar() string {
	if !m.showStatus {
		return m.help.View(m.keys)
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	switch m.status {
	case event.Error:
		style = style.Foreground(theme.Red())
	case event.Warn:
		style = style.Foreground(theme.Yellow())
	default:
		style = style.Foreground(theme.Teal())
	}
	return style.Render(m.statusMsg)
}

package jsonview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/flavono123/schemer/internal/config"
	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/openapi"
	"github.com/flavono123/schemer/internal/preview"
	"github.com/flavono123/schemer/internal/ui/event"
	"github.com/flavono123/schemer/internal/ui/theme"
)

const (
	VIEW_WIDTH_RATIO          = 0.5
	VIEW_HEIGHT_BOTTOM_MARGIN = 6 // topbar 1 + border top, down 2 + change 1 + help 1 + status 1
	VIEW_SCROLL_STEP          = 1
	VIEW_HORIZONTAL_MARGIN    = 4
)

type Mode uint

const (
	JSONMode Mode = iota
	YAMLMode
	SchemaMode
)

var modeNames = []string{"JSON", "YAML", "Schema"}

func (m Mode) String() string {
	return modeNames[m]
}

type Model struct {
	focus  bool
	mode   Mode
	indent int
	fields []*field.Node

	content  string
	lastJSON []byte
	change   string

	vp    viewport.Model
	style lipgloss.Style
	keys  keyMap
	help  help.Model
}

// NewModel starts in the mode matching format, config.FormatJSON or
// config.FormatYAML.
func NewModel(fields []*field.Node, format string, indent int) *Model {
	mode := JSONMode
	if format == config.FormatYAML {
		mode = YAMLMode
	}

	m := &Model{
		mode:   mode,
		indent: indent,
		vp:     viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Overlay0()),
		keys: newKeyMap(),
		help: help.New(),
	}
	m.setFields(fields)

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetFieldsMsg:
		return m, m.setFields(msg.Fields)
	case tea.WindowSizeMsg:
		m.vp.Width = max(int(float64(msg.Width)*VIEW_WIDTH_RATIO)-VIEW_HORIZONTAL_MARGIN, 1)
		m.vp.Height = max(msg.Height-VIEW_HEIGHT_BOTTOM_MARGIN, 1)
		m.help.Width = m.vp.Width
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		switch {
		case key.Matches(msg, m.keys.up):
			m.vp.LineUp(VIEW_SCROLL_STEP)
		case key.Matches(msg, m.keys.down):
			m.vp.LineDown(VIEW_SCROLL_STEP)
		case key.Matches(msg, m.keys.pageUp):
			m.vp.ViewUp()
		case key.Matches(msg, m.keys.pageDown):
			m.vp.ViewDown()
		case key.Matches(msg, m.keys.top):
			m.vp.GotoTop()
		case key.Matches(msg, m.keys.bottom):
			m.vp.GotoBottom()
		}
	}

	return m, nil
}

func (m *Model) View() string {
	m.vp.SetContent(m.content)

	helpView := ""
	if m.focus {
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
		m.renderChange(),
		helpView,
	)
}

// CycleMode switches JSON -> YAML -> Schema -> JSON.
func (m *Model) CycleMode() tea.Cmd {
	m.mode = (m.mode + 1) % Mode(len(modeNames))
	log.WithField("mode", m.mode.String()).Debug("preview mode changed")
	return m.render()
}

func (m *Model) Mode() Mode {
	return m.mode
}

// Content is the text currently shown.
func (m *Model) Content() string {
	return m.content
}

// Change is the merge patch between the last two JSON previews.
func (m *Model) Change() string {
	return m.change
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

func (m *Model) setFields(fields []*field.Node) tea.Cmd {
	m.fields = fields

	next, err := preview.JSON(preview.Derive(fields), 0)
	if err != nil {
		return statusErr(err)
	}
	if m.lastJSON != nil {
		change, err := preview.Change(m.lastJSON, next)
		if err != nil {
			return statusErr(err)
		}
		m.change = change
	}
	m.lastJSON = next

	return m.render()
}

func (m *Model) render() tea.Cmd {
	var (
		out []byte
		err error
	)
	switch m.mode {
	case JSONMode:
		out, err = preview.Render(preview.Derive(m.fields), config.FormatJSON, m.indent)
	case YAMLMode:
		out, err = preview.Render(preview.Derive(m.fields), config.FormatYAML, m.indent)
	case SchemaMode:
		out, err = openapi.Marshal(m.fields, m.indent)
	}
	if err != nil {
		return statusErr(err)
	}

	m.content = string(out)
	return nil
}

func statusErr(err error) tea.Cmd {
	log.WithError(err).Error("failed to render preview")
	return event.Emit(event.SetStatusMsg{Message: err.Error(), Status: event.Error})
}

func (m *Model) renderTopBar() string {
	active := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(theme.Overlay0()).Padding(0, 1)

	tabs := []string{}
	for i, name := range modeNames {
		if Mode(i) == m.mode {
			tabs = append(tabs, active.Render(name))
		} else {
			tabs = append(tabs, inactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, tabs...)
}

func (m *Model) renderChange() string {
	style := lipgloss.NewStyle().Foreground(theme.Subtext0()).MaxWidth(m.vp.Width)
	if m.change == "" {
		return style.Render("no changes")
	}
	return style.Render("last change: " + m.change)
}

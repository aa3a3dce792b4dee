package finder

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/schemer/internal/field"
)

type ShowMsg struct {
	Fields []*field.Node
}

type HideMsg struct{}

func Show(fields []*field.Node) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Fields: fields}
	}
}

func Hide() tea.Msg {
	return HideMsg{}
}

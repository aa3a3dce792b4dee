package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/schemer/internal/field"
)

// builder -> root, every edit is addressed by field id

type AddRootMsg struct{}

type AddSiblingMsg struct {
	ID string
}

type AddChildMsg struct {
	ID string
}

type RenameMsg struct {
	ID  string
	Key string
}

type RetypeMsg struct {
	ID   string
	Type field.Type
}

type DeleteMsg struct {
	ID string
}

type UndoMsg struct{}

type RedoMsg struct{}

// finder -> root
type FocusFieldMsg struct {
	ID string
}

// -> root

type Status uint

const (
	Error Status = iota
	Warn
	Info
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

const statusDuration = time.Millisecond * 1060

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}

func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

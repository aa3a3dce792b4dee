package ui

import "github.com/charmbracelet/bubbles/key"

// main
type keyMap struct {
	quit       key.Binding
	forceQuit  key.Binding
	showFinder key.Binding
	tabView    key.Binding
	cycleMode  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		showFinder: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		tabView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch builder/preview"),
		),
		cycleMode: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "json/yaml/schema"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.tabView,
		k.cycleMode,
		k.showFinder,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}

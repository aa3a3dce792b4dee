package builder

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	fold       key.Binding
	rename     key.Binding
	nextType   key.Binding
	prevType   key.Binding
	addRoot    key.Binding
	addSibling key.Binding
	addChild   key.Binding
	delete     key.Binding
	undo       key.Binding
	redo       key.Binding

	// while editing a key or confirming a delete
	done    key.Binding
	confirm key.Binding
	cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:   key.NewBinding(key.WithKeys("up", "k")),
		down: key.NewBinding(key.WithKeys("down", "j")),
		fold: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fold"),
		),
		rename: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "rename"),
		),
		nextType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t/T", "type"),
		),
		prevType: key.NewBinding(key.WithKeys("T")),
		addRoot: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add field"),
		),
		addSibling: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add sibling"),
		),
		addChild: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add nested"),
		),
		delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		redo: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "redo"),
		),
		done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "done"),
		),
		confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addRoot,
		k.addSibling,
		k.addChild,
		k.rename,
		k.nextType,
		k.delete,
		k.undo,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.fold, k.redo},
	}
}

type editKeyMap struct{ keyMap }

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.done}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type confirmKeyMap struct{ keyMap }

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.cancel}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

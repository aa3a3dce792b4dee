package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/schemer/internal/config"
	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/store"
	"github.com/flavono123/schemer/internal/ui/event"
	"github.com/flavono123/schemer/internal/ui/finder"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var result []tea.Msg
		for _, c := range batch {
			result = append(result, messages(c)...)
		}
		return result
	}
	return []tea.Msg{msg}
}

var _ = Describe("Model", func() {
	var (
		fields []*field.Node
		s      *store.Store
		m      *Model
	)

	BeforeEach(func() {
		fields = field.Sample()
		s = store.NewStore(fields)
		m = NewModel(s, config.Default())
		m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	})

	It("should apply edits to the store and refresh the preview", func() {
		m.Update(event.RenameMsg{ID: fields[0].ID, Key: "first name"})

		Expect(s.Revision()).To(Equal(uint64(1)))
		Expect(m.Fields()[0].Key).To(Equal("first_name"))
		Expect(m.view.Content()).To(ContainSubstring(`"first_name": ""`))
	})

	It("should move the builder cursor onto a created field", func() {
		m.Update(event.AddSiblingMsg{ID: fields[0].ID})

		created := m.Fields()[1]
		Expect(created.Key).To(Equal(field.DefaultKey))
		Expect(m.builder.CursorID()).To(Equal(created.ID))
	})

	It("should ignore edits of a missing field", func() {
		_, cmd := m.Update(event.DeleteMsg{ID: "missing"})

		Expect(cmd).To(BeNil())
		Expect(s.Revision()).To(BeZero())
		Expect(field.Equal(m.Fields(), fields)).To(BeTrue())
	})

	It("should undo and redo", func() {
		m.Update(event.DeleteMsg{ID: fields[2].ID})
		Expect(m.view.Content()).NotTo(ContainSubstring("profile"))

		m.Update(event.UndoMsg{})
		Expect(m.view.Content()).To(ContainSubstring("profile"))

		m.Update(event.RedoMsg{})
		Expect(m.Fields()).To(HaveLen(2))
	})

	It("should enable the undo key once there is history", func() {
		_, cmd := m.Update(runes("u"))
		Expect(messages(cmd)).To(BeEmpty())

		m.Update(event.RenameMsg{ID: fields[0].ID, Key: "x"})
		_, cmd = m.Update(runes("u"))
		Expect(messages(cmd)).To(ConsistOf(event.UndoMsg{}))
	})

	It("should warn when there is nothing to undo", func() {
		m.Update(event.UndoMsg{})

		Expect(m.showStatus).To(BeTrue())
		Expect(m.status).To(Equal(event.Warn))

		m.Update(event.HideStatusMsg{})
		Expect(m.showStatus).To(BeFalse())
	})

	It("should switch panes with tab", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		Expect(m.state).To(Equal(previewView))

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		Expect(m.state).To(Equal(builderView))
	})

	It("should open the finder and focus the picked field", func() {
		_, cmd := m.Update(runes("/"))
		msgs := messages(cmd)
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0]).To(BeAssignableToTypeOf(finder.ShowMsg{}))

		m.Update(msgs[0])
		Expect(m.finder.Visible()).To(BeTrue())

		m.Update(event.FocusFieldMsg{ID: fields[2].Children[0].ID})
		Expect(m.builder.CursorID()).To(Equal(fields[2].Children[0].ID))
	})

	It("should quit on q unless a key is being edited", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		_, cmd := m.Update(runes("q"))
		Expect(messages(cmd)).NotTo(ContainElement(tea.QuitMsg{}))

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		_, cmd = m.Update(runes("q"))
		Expect(messages(cmd)).To(ContainElement(tea.QuitMsg{}))
	})
})

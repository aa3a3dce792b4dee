package finder

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/ui/event"
)

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

func keys(hits []hit) []string {
	result := []string{}
	for _, h := range hits {
		result = append(result, h.path.String())
	}
	return result
}

var _ = Describe("Finder", func() {
	var fields []*field.Node

	BeforeEach(func() {
		fields = field.Sample()
		inner := field.CreateNodeBuilder("inner", field.Number).Build()
		unnamed := field.CreateNodeBuilder("", field.Object).WithChildren(inner).Build()
		fields = append(fields, unnamed)
	})

	Describe("collectPaths", func() {
		It("should list named fields by dotted path", func() {
			Expect(keys(search(collectPaths(fields), ""))).To(Equal([]string{"name", "age", "profile", "profile.bio"}))
		})
	})

	Describe("search", func() {
		It("should match fuzzily and remember where", func() {
			hits := search(collectPaths(fields), "pbio")
			Expect(keys(hits)).To(Equal([]string{"profile.bio"}))
			Expect(hits[0].matched.Has(0)).To(BeTrue())
			Expect(hits[0].matched.Has(len("profile."))).To(BeTrue())
		})

		It("should return nothing when nothing matches", func() {
			Expect(search(collectPaths(fields), "zzz")).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		var m *Model

		BeforeEach(func() {
			m = NewModel()
			m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
			m.Update(ShowMsg{Fields: fields})
		})

		It("should show every field with its type", func() {
			Expect(m.Visible()).To(BeTrue())
			Expect(m.View()).To(ContainSubstring("<Nested>"))
			Expect(m.View()).To(ContainSubstring("bio"))
		})

		It("should pick the field under the cursor", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			msgs := messages(cmd)
			Expect(msgs).To(ContainElement(event.FocusFieldMsg{ID: fields[1].ID}))
			Expect(msgs).To(ContainElement(HideMsg{}))
		})

		It("should keep the cursor inside the hits", func() {
			for i := 0; i < 10; i++ {
				m.Update(tea.KeyMsg{Type: tea.KeyDown})
			}
			Expect(m.cursor).To(Equal(3))
			m.Update(tea.KeyMsg{Type: tea.KeyUp})
			Expect(m.cursor).To(Equal(2))
		})

		It("should pick the best hit after typing", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bio")})
			Expect(m.cursor).To(BeZero())

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			Expect(messages(cmd)).To(ContainElement(event.FocusFieldMsg{ID: fields[2].Children[0].ID}))
		})

		It("should say so when nothing matches", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
			Expect(m.View()).To(ContainSubstring(NO_MATCH))

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			Expect(cmd).To(BeNil())
		})

		It("should hide on esc", func() {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			Expect(messages(cmd)).To(ConsistOf(HideMsg{}))
			m.Update(HideMsg{})
			Expect(m.Visible()).To(BeFalse())
		})
	})
})

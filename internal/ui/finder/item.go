package finder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/ui/theme"
)

const PATH_SEPARATOR = "."

// fieldPath is a named field and the keys leading to it.
type fieldPath struct {
	id   string
	keys []string
	t    field.Type
}

func (p fieldPath) String() string {
	return strings.Join(p.keys, PATH_SEPARATOR)
}

type fieldPaths []fieldPath

// fuzzy.Source
func (ps fieldPaths) String(i int) string { return ps[i].String() }
func (ps fieldPaths) Len() int            { return len(ps) }

// collectPaths lists the named fields in display order. Fields under an
// unnamed object are skipped with it, there is no path to show for them.
func collectPaths(fields []*field.Node) fieldPaths {
	var paths fieldPaths
	field.Walk(fields, func(node *field.Node, _ int, keys []string) bool {
		if node.Key == "" {
			return false
		}
		paths = append(paths, fieldPath{
			id:   node.ID,
			keys: append(append([]string{}, keys...), node.Key),
			t:    node.Type,
		})
		return true
	})
	return paths
}

// hit is a path matching the query, with the byte offsets it matched at.
type hit struct {
	path    fieldPath
	matched sets.Set[int]
}

func search(paths fieldPaths, query string) []hit {
	if query == "" {
		hits := make([]hit, len(paths))
		for i, p := range paths {
			hits[i] = hit{path: p, matched: sets.New[int]()}
		}
		return hits
	}

	var hits []hit
	for _, match := range fuzzy.FindFrom(query, paths) {
		hits = append(hits, hit{
			path:    paths[match.Index],
			matched: sets.New(match.MatchedIndexes...),
		})
	}
	return hits
}

var typeColors = map[field.Type]func() lipgloss.Color{
	field.String: theme.Green,
	field.Number: theme.Peach,
	field.Object: theme.Mauve,
}

// render draws the parents dimmed, the key itself bright and matched runes
// highlighted, with the type label pushed to the right edge.
func (h hit) render(width int, hovered bool) string {
	parent := lipgloss.NewStyle().Foreground(theme.Overlay0())
	own := lipgloss.NewStyle().Foreground(theme.Text())
	matched := lipgloss.NewStyle().Foreground(theme.Yellow()).Bold(true)

	var b strings.Builder
	offset := 0
	last := len(h.path.keys) - 1
	for i, key := range h.path.keys {
		if i > 0 {
			b.WriteString(parent.Render(PATH_SEPARATOR))
			offset += len(PATH_SEPARATOR)
		}
		style := parent
		if i == last {
			style = own
		}
		for j, r := range key {
			if h.matched.Has(offset + j) {
				b.WriteString(matched.Render(string(r)))
			} else {
				b.WriteString(style.Render(string(r)))
			}
		}
		offset += len(key)
	}

	marker := "  "
	if hovered {
		marker = lipgloss.NewStyle().Foreground(theme.Mauve()).Render("> ")
	}
	label := lipgloss.NewStyle().
		Foreground(typeColors[h.path.t]()).
		Render(fmt.Sprintf("<%s>", h.path.t.Label()))

	left := marker + b.String()
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(label), 1)
	return lipgloss.NewStyle().MaxWidth(width).Render(left + strings.Repeat(" ", gap) + label)
}

package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/ui/theme"
)

const (
	KEY_PLACEHOLDER = "key"
	EMPTY_OBJECT    = "+ add first nested field"
)

// Line is one row of the builder. A hint line belongs to an empty object
// and offers to add its first child.
type Line struct {
	node  *field.Node
	depth int
	index int
	hint  bool
}

func newLine(node *field.Node, depth int, index int) *Line {
	return &Line{node: node, depth: depth, index: index}
}

func newHintLine(parent *field.Node, depth int, index int) *Line {
	return &Line{node: parent, depth: depth, index: index, hint: true}
}

// ID of the field the line edits; for a hint line, its object.
func (l *Line) ID() string {
	return l.node.ID
}

func (l *Line) render(leftPadding int, cursored bool, collapsed bool, blurred bool) string {
	if l.hint {
		return lipgloss.JoinHorizontal(
			lipgloss.Left,
			l.number(leftPadding),
			l.indent(),
			l.cursor(cursored, blurred),
			" ",
			lipgloss.NewStyle().Foreground(theme.Sky()).Render(EMPTY_OBJECT),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		l.number(leftPadding),
		l.indent(),
		l.cursor(cursored, blurred),
		l.action(collapsed),
		l.renderNode(),
	)
}

func (l *Line) renderNode() string {
	name := lipgloss.NewStyle().Foreground(theme.Green())
	displayType := lipgloss.NewStyle().Foreground(theme.Peach())

	key := l.node.Key
	if key == "" {
		name = name.Foreground(theme.Overlay0()).Italic(true)
		key = KEY_PLACEHOLDER
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		name.Render(key),
		displayType.Render(fmt.Sprintf("<%s>", l.node.Type.Label())),
	)
}

func (l *Line) number(leftPadding int) string {
	number := lipgloss.NewStyle().Foreground(theme.Overlay0())
	fmtStr := fmt.Sprintf("%%%dd ", leftPadding)
	return number.Render(fmt.Sprintf(fmtStr, l.index+1))
}

func (l *Line) indent() string {
	return strings.Repeat(" ", l.depth*2)
}

func (l *Line) cursor(cursored bool, blurred bool) string {
	if cursored {
		return l.cursorStyle(blurred).Render(">")
	}
	return l.cursorStyle(blurred).Render(" ")
}

func (l *Line) cursorStyle(blurred bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if blurred {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}

	return style
}

func (l *Line) action(collapsed bool) string {
	action := lipgloss.NewStyle().Foreground(theme.Subtext1())
	if !l.node.IsObject() {
		return action.Render(" ")
	}
	if collapsed {
		return action.Render("+")
	}
	return action.Render("-")
}

// buildLines flattens the tree into rows. Children of collapsed objects are
// left out; an expanded empty object gets a hint row.
func buildLines(fields []*field.Node, collapsed map[string]bool) []*Line {
	lines := []*Line{}
	var build func(nodes []*field.Node, depth int)
	build = func(nodes []*field.Node, depth int) {
		for _, node := range nodes {
			lines = append(lines, newLine(node, depth, len(lines)))
			if !node.IsObject() || collapsed[node.ID] {
				continue
			}
			if len(node.Children) == 0 {
				lines = append(lines, newHintLine(node, depth+1, len(lines)))
				continue
			}
			build(node.Children, depth+1)
		}
	}
	build(fields, 0)

	return lines
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/view"
)

const (
	appPadding     = 4  // Horizontal padding of Styles.App
	minColumnWidth = 18 // Narrowest column that still fits a card
	defaultWidth   = 96 // Width used when rendering outside a terminal
)

// selection marks the highlighted card; column < 0 means none.
type selection struct {
	column int
	row    int
}

var noSelection = selection{column: -1}

// View renders the TUI. The tree is rebuilt from state on every call.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	tree := m.Tree()
	sel := noSelection
	if m.focus == FocusBoard {
		sel = selection{column: m.column, row: m.row}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(tree.Header),
		"",
		renderColumns(m.styles, tree, m.contentWidth(), sel),
		m.styles.Footer.Render(m.help.View(m.keys)),
	)
	return m.styles.App.Render(content)
}

// contentWidth returns the available content width.
func (m *Model) contentWidth() int {
	w := m.width - appPadding
	if w < 0 {
		w = 0
	}
	return w
}

// viewHeader renders the new-task form.
func (m *Model) viewHeader(h view.Header) string {
	title := m.styles.HeaderText.Render("kanban")

	name := m.viewField("Name", m.nameInput.View(), m.focus == FocusName)
	assignee := m.viewField("Assignee", m.viewSelect(h.Assignee), m.focus == FocusAssignee)
	mandaysBox := m.mandaysInput.View() + m.styles.Hint.Render(" = "+h.Mandays.Value+" person-days")
	mandays := m.viewField("Mandays", mandaysBox, m.focus == FocusMandays)

	button := m.styles.Button
	if m.focus == FocusSubmit {
		button = m.styles.ButtonFocused
	}
	submit := lipgloss.JoinVertical(lipgloss.Left, "", button.Render(h.Submit.Label))

	form := lipgloss.JoinHorizontal(lipgloss.Bottom, name, " ", assignee, " ", mandays, " ", submit)
	return lipgloss.JoinVertical(lipgloss.Left, title, form)
}

// viewField renders a labelled form control.
func (m *Model) viewField(label, control string, focused bool) string {
	labelStyle := m.styles.FieldLabel
	fieldStyle := m.styles.Field
	if focused {
		labelStyle = m.styles.FieldLabelFocused
		fieldStyle = m.styles.FieldFocused
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		fieldStyle.Render(control),
	)
}

// viewSelect renders the assignee selector as "◀ value ▶" with all options.
func (m *Model) viewSelect(s view.Select) string {
	parts := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		if o == s.Value {
			parts = append(parts, "["+o+"]")
		} else {
			parts = append(parts, " "+o+" ")
		}
	}
	return "◀ " + strings.Join(parts, "") + " ▶"
}

// RenderBoard renders the columns of tree without a selection.
// width <= 0 uses a default width.
func RenderBoard(styles Styles, tree view.Tree, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return renderColumns(styles, tree, width, noSelection)
}

// renderColumns lays the columns out side by side.
func renderColumns(styles Styles, tree view.Tree, width int, sel selection) string {
	n := len(tree.Columns)
	if n == 0 {
		return ""
	}
	colWidth := width / n
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	cols := make([]string, 0, n)
	for i, col := range tree.Columns {
		selected := -1
		if sel.column == i {
			selected = sel.row
		}
		cols = append(cols, renderColumn(styles, col, colWidth, selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderColumn renders the label, count badge and cards of one column.
func renderColumn(styles Styles, col view.Column, width, selected int) string {
	header := styles.ColumnLabelStyle(col.Status).Render(col.Label) +
		styles.CountBadge.Render(fmt.Sprintf("%d", col.Count))

	lines := []string{header}
	if len(col.Cards) == 0 {
		lines = append(lines, styles.Empty.Render("no tasks"))
	}
	for i, card := range col.Cards {
		lines = append(lines, renderCard(styles, col.Status, card, width-2, i == selected))
	}
	return styles.Column.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderCard renders a single task card.
func renderCard(styles Styles, status domain.Status, card view.Card, width int, selected bool) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	// Border and padding take four cells.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	name := styles.CardName.Render(truncate.StringWithTail(card.Name, uint(inner), "…"))
	meta := styles.CardMeta.Render(truncate.StringWithTail(card.Assignee+"  "+card.Mandays, uint(inner), "…"))

	retreat := styles.CardControlOff.Render(card.Retreat.Label)
	if status.CanRetreat() {
		retreat = styles.CardControl.Render(card.Retreat.Label)
	}
	advance := styles.CardControlOff.Render(card.Advance.Label)
	if status.CanAdvance() {
		advance = styles.CardControl.Render(card.Advance.Label)
	}
	gap := inner - lipgloss.Width(retreat) - lipgloss.Width(advance)
	if gap < 1 {
		gap = 1
	}
	controls := retreat + strings.Repeat(" ", gap) + advance

	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, name, meta, controls))
}

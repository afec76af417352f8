package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/kanban/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Column colors
	Todo  lipgloss.Color
	Doing lipgloss.Color
	Done  lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow

	Todo:  lipgloss.Color("#74B9FF"), // Light blue
	Doing: lipgloss.Color("#FDCB6E"), // Yellow
	Done:  lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	HeaderText lipgloss.Style

	// Form
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	Field             lipgloss.Style
	FieldFocused      lipgloss.Style
	Hint              lipgloss.Style
	Button            lipgloss.Style
	ButtonFocused     lipgloss.Style

	// Board
	Column         lipgloss.Style
	ColumnLabel    lipgloss.Style
	CountBadge     lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardName       lipgloss.Style
	CardMeta       lipgloss.Style
	CardControl    lipgloss.Style
	CardControlOff lipgloss.Style
	Empty          lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	field := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		Padding(0, 1)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Colors.Muted).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		FieldLabelFocused: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),
		Field:        field,
		FieldFocused: field.BorderForeground(Colors.Primary),
		Hint: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Primary).
			Foreground(Colors.TitleSelected).
			Bold(true).
			Padding(0, 2),

		Column: lipgloss.NewStyle().
			Padding(0, 1),
		ColumnLabel: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		CountBadge: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Background(Colors.Background).
			Padding(0, 1),
		Card:         card,
		CardSelected: card.BorderForeground(Colors.TitleSelected),
		CardName: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Bold(true),
		CardMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		CardControl: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		CardControlOff: lipgloss.NewStyle().
			Foreground(Colors.Background),
		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// StatusColor returns the accent color for a column.
func StatusColor(status domain.Status) lipgloss.Color {
	switch status {
	case domain.StatusTodo:
		return Colors.Todo
	case domain.StatusDoing:
		return Colors.Doing
	case domain.StatusDone:
		return Colors.Done
	}
	return Colors.Muted
}

// ColumnLabelStyle returns the label style tinted for a column.
func (s Styles) ColumnLabelStyle(status domain.Status) lipgloss.Style {
	return s.ColumnLabel.Foreground(StatusColor(status))
}

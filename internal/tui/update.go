package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/kanban/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgDispatch:
		m.dispatch(msg.Msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.logger.Info("tui", "quit")
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.focus.Next())
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.focus.Prev())
		return m, nil
	}

	switch m.focus {
	case FocusName:
		return m.handleNameKey(msg)
	case FocusAssignee:
		return m.handleAssigneeKey(msg)
	case FocusMandays:
		return m.handleMandaysKey(msg)
	case FocusSubmit:
		return m.handleSubmitKey(msg)
	case FocusBoard, focusCount:
		return m.handleBoardKey(msg)
	}
	return m, nil
}

// handleNameKey handles keys while the name input has focus.
// Every change of the input value is dispatched.
func (m *Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.dispatch(m.Tree().Header.Submit.OnActivate)
		return m, nil
	}

	before := m.nameInput.Value()
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	if v := m.nameInput.Value(); v != before {
		m.dispatch(m.Tree().Header.Name.Emit(v))
	}
	return m, cmd
}

// handleMandaysKey handles keys while the mandays input has focus.
// The raw text is dispatched; the reducer ignores what does not parse.
func (m *Model) handleMandaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.dispatch(m.Tree().Header.Submit.OnActivate)
		return m, nil
	}

	before := m.mandaysInput.Value()
	var cmd tea.Cmd
	m.mandaysInput, cmd = m.mandaysInput.Update(msg)
	if v := m.mandaysInput.Value(); v != before {
		m.dispatch(m.Tree().Header.Mandays.Emit(v))
	}
	return m, cmd
}

// handleAssigneeKey handles keys while the selector has focus.
// Arrow keys change the selection; typed text is reported as a plain
// input event, which the reducer does not apply.
func (m *Model) handleAssigneeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.Tree().Header.Assignee

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.dispatch(m.Tree().Header.Submit.OnActivate)
	case key.Matches(msg, m.keys.PrevOption):
		m.dispatch(sel.Emit(domain.ChangeSelect{Value: stepOption(sel.Options, sel.Value, -1)}))
	case key.Matches(msg, m.keys.NextOption):
		m.dispatch(sel.Emit(domain.ChangeSelect{Value: stepOption(sel.Options, sel.Value, 1)}))
	case msg.Type == tea.KeyRunes:
		m.dispatch(sel.Emit(domain.ChangeInput{Value: string(msg.Runes)}))
	}
	return m, nil
}

// handleSubmitKey handles keys while the add-task button has focus.
func (m *Model) handleSubmitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PressButton), msg.Type == tea.KeySpace:
		m.dispatch(m.Tree().Header.Submit.OnActivate)
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("tui", "quit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleBoardKey handles keys while the columns have focus.
func (m *Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("tui", "quit")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NewTask):
		m.setFocus(FocusName)

	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
		}
		m.clampSelection()

	case key.Matches(msg, m.keys.Right):
		if m.column < len(domain.AllStatuses())-1 {
			m.column++
		}
		m.clampSelection()

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(msg, m.keys.Down):
		m.row++
		m.clampSelection()

	case key.Matches(msg, m.keys.Advance):
		if card, ok := m.SelectedCard(); ok {
			m.dispatch(card.Advance.OnActivate)
			m.selectTask(card.Index)
		}

	case key.Matches(msg, m.keys.Retreat):
		if card, ok := m.SelectedCard(); ok {
			m.dispatch(card.Retreat.OnActivate)
			m.selectTask(card.Index)
		}
	}
	return m, nil
}

// stepOption returns the option delta places away from current, wrapping
// around. An unset current value steps from just outside the list.
func stepOption(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if delta > 0 {
			return options[0]
		}
		return options[len(options)-1]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/view"
)

// Model is the main bubbletea model for the TUI.
// It owns the board state; every change goes through dispatch.
type Model struct {
	// Dependencies
	state  *domain.State
	logger domain.Logger

	// Components
	keys         KeyMap
	styles       Styles
	help         help.Model
	nameInput    textinput.Model
	mandaysInput textinput.Model

	// Numeric state
	reducer    domain.Reducer
	focus      Focus
	column     int // Selected column on the board
	row        int // Selected card within the column
	width      int
	height     int
	dispatched int
}

// New creates a new TUI Model over state.
func New(state *domain.State, reducer domain.Reducer, logger domain.Logger) *Model {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 0
	ni.Prompt = ""
	ni.SetValue(state.NewTaskName)

	mi := textinput.New()
	mi.Placeholder = "0"
	mi.CharLimit = 10
	mi.Prompt = ""
	mi.Width = 6
	if state.NewTaskMandays != 0 {
		mi.SetValue(view.Render(state).Header.Mandays.Value)
	}

	m := &Model{
		state:        state,
		logger:       logger,
		reducer:      reducer,
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		help:         help.New(),
		nameInput:    ni,
		mandaysInput: mi,
	}
	m.setFocus(FocusName)
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	m.logger.Info("tui", "started")
	return textinput.Blink
}

// State returns the board state owned by the model.
func (m *Model) State() *domain.State {
	return m.state
}

// Focus returns the focused control.
func (m *Model) Focus() Focus {
	return m.focus
}

// Dispatched returns how many messages have been applied.
func (m *Model) Dispatched() int {
	return m.dispatched
}

// Tree renders the current state. It is recomputed on every call.
func (m *Model) Tree() view.Tree {
	return view.Render(m.state)
}

// dispatch applies msg through the reducer. A nil msg is ignored.
func (m *Model) dispatch(msg domain.Msg) {
	if msg == nil {
		return
	}
	m.reducer.Apply(m.state, msg)
	m.dispatched++
	m.logger.Debug("update", domain.DescribeMsg(msg))

	if _, ok := msg.(domain.SubmitNewTask); ok {
		m.syncInputs()
	}
	m.clampSelection()
}

// syncInputs clears the text inputs when the reducer cleared the buffers.
// Otherwise the inputs keep raw typed text, since an unparsable mandays
// entry leaves the buffer untouched.
func (m *Model) syncInputs() {
	if !m.reducer.ResetFormOnSubmit {
		return
	}
	m.nameInput.Reset()
	m.mandaysInput.Reset()
}

// setFocus moves focus and updates the text input cursors.
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.nameInput.Blur()
	m.mandaysInput.Blur()
	switch f {
	case FocusName:
		m.nameInput.Focus()
	case FocusMandays:
		m.mandaysInput.Focus()
	case FocusAssignee, FocusSubmit, FocusBoard, focusCount:
	}
}

// SelectedCard returns the selected card on the board, if any.
func (m *Model) SelectedCard() (view.Card, bool) {
	tree := m.Tree()
	if m.column < 0 || m.column >= len(tree.Columns) {
		return view.Card{}, false
	}
	cards := tree.Columns[m.column].Cards
	if m.row < 0 || m.row >= len(cards) {
		return view.Card{}, false
	}
	return cards[m.row], true
}

// selectTask moves the board selection onto the card for task index.
func (m *Model) selectTask(index int) {
	for ci, col := range m.Tree().Columns {
		for ri, card := range col.Cards {
			if card.Index == index {
				m.column = ci
				m.row = ri
				return
			}
		}
	}
}

// clampSelection keeps the selection inside the board.
func (m *Model) clampSelection() {
	cols := m.Tree().Columns
	if m.column >= len(cols) {
		m.column = len(cols) - 1
	}
	if m.column < 0 {
		m.column = 0
	}
	n := 0
	if m.column < len(cols) {
		n = len(cols[m.column].Cards)
	}
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

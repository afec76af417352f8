package tui

import "github.com/runoshun/kanban/internal/domain"

// MsgDispatch asks the model to apply a board message, as if it came from
// a control. It lets a running program be driven with tea.Program.Send.
type MsgDispatch struct {
	Msg domain.Msg
}

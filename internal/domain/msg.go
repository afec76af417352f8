package domain

import "fmt"

// Msg is the sealed interface for all board messages.
// Every user intent reaches the reducer as one of the types below.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// SetNewTaskName replaces the pending task name.
type SetNewTaskName struct {
	Text string
}

func (SetNewTaskName) sealed() {}

// SetNewTaskAssignee carries a change event from the assignee selector.
type SetNewTaskAssignee struct {
	Event ChangeEvent
}

func (SetNewTaskAssignee) sealed() {}

// SetNewTaskMandays carries raw text from the mandays field.
type SetNewTaskMandays struct {
	Text string
}

func (SetNewTaskMandays) sealed() {}

// SubmitNewTask appends a task built from the form buffers.
type SubmitNewTask struct{}

func (SubmitNewTask) sealed() {}

// AdvanceStatus moves the task at Index one column forward.
type AdvanceStatus struct {
	Index int
}

func (AdvanceStatus) sealed() {}

// RetreatStatus moves the task at Index one column backward.
type RetreatStatus struct {
	Index int
}

func (RetreatStatus) sealed() {}

// ChangeEvent is the sealed interface for input-change events.
//
// go-sumtype:decl ChangeEvent
type ChangeEvent interface {
	changeEvent()
}

// ChangeSelect is emitted when a selection control picks a new value.
type ChangeSelect struct {
	Value string
}

func (ChangeSelect) changeEvent() {}

// ChangeInput is emitted for any other kind of input change
// (for example typing while a selector has focus).
type ChangeInput struct {
	Value string
}

func (ChangeInput) changeEvent() {}

// DescribeMsg returns a short human-readable form of msg for logs.
func DescribeMsg(msg Msg) string {
	switch m := msg.(type) {
	case SetNewTaskName:
		return fmt.Sprintf("set name %q", m.Text)
	case SetNewTaskAssignee:
		switch ev := m.Event.(type) {
		case ChangeSelect:
			return fmt.Sprintf("select assignee %q", ev.Value)
		case ChangeInput:
			return fmt.Sprintf("input assignee %q", ev.Value)
		}
		return "assignee event"
	case SetNewTaskMandays:
		return fmt.Sprintf("set mandays %q", m.Text)
	case SubmitNewTask:
		return "submit"
	case AdvanceStatus:
		return fmt.Sprintf("advance #%d", m.Index)
	case RetreatStatus:
		return fmt.Sprintf("retreat #%d", m.Index)
	}
	return fmt.Sprintf("%T", msg)
}

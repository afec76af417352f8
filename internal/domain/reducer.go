package domain

import (
	"strconv"
	"strings"
)

// Reducer applies messages to a State.
type Reducer struct {
	// ResetFormOnSubmit clears the form buffers after SubmitNewTask.
	// When false the buffers keep their values, so submitting twice adds
	// two identical tasks.
	ResetFormOnSubmit bool
}

// Apply applies msg to s with the default reducer.
func Apply(s *State, msg Msg) bool {
	return Reducer{}.Apply(s, msg)
}

// Apply mutates s according to msg and reports whether the view must be
// re-rendered. It always returns true; invalid input is ignored without error.
func (r Reducer) Apply(s *State, msg Msg) bool {
	switch m := msg.(type) {
	case SetNewTaskName:
		s.NewTaskName = m.Text
	case SetNewTaskAssignee:
		if ev, ok := m.Event.(ChangeSelect); ok {
			s.NewTaskAssignee = ev.Value
		}
	case SetNewTaskMandays:
		if v, ok := ParseMandays(m.Text); ok {
			s.NewTaskMandays = v
		}
	case SubmitNewTask:
		s.addTask(s.NewTaskName, s.NewTaskAssignee, s.NewTaskMandays)
		if r.ResetFormOnSubmit {
			s.resetForm()
		}
	case AdvanceStatus:
		s.advance(m.Index)
	case RetreatStatus:
		s.retreat(m.Index)
	}
	return true
}

// ParseMandays parses text as a non-negative 32-bit decimal integer.
// A single leading '+' is accepted; whitespace is not.
func ParseMandays(text string) (int, bool) {
	digits := strings.TrimPrefix(text, "+")
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// Package tui provides the terminal user interface for kanban.
package tui

// Focus identifies the control receiving key input.
type Focus int

const (
	FocusName     Focus = iota // New task name input
	FocusAssignee              // Assignee selector
	FocusMandays               // Mandays input
	FocusSubmit                // Add-task button
	FocusBoard                 // Task columns

	focusCount
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusName:
		return "name"
	case FocusAssignee:
		return "assignee"
	case FocusMandays:
		return "mandays"
	case FocusSubmit:
		return "submit"
	case FocusBoard:
		return "board"
	case focusCount:
		return "unknown"
	}
	return "unknown"
}

// Next returns the following focus in tab order.
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the preceding focus in tab order.
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// IsTextInput returns true if the focused control accepts free text.
func (f Focus) IsTextInput() bool {
	switch f {
	case FocusName, FocusMandays:
		return true
	case FocusAssignee, FocusSubmit, FocusBoard, focusCount:
		return false
	}
	return false
}

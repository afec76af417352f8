package domain

import "fmt"

// Status represents the column a task belongs to.
// Values are ordered; transitions move exactly one step at a time.
type Status int

const (
	StatusTodo  Status = 1 // Not started
	StatusDoing Status = 2 // In progress
	StatusDone  Status = 3 // Finished
)

// AllStatuses returns all valid status values in column order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusDoing,
		StatusDone,
	}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	return s >= StatusTodo && s <= StatusDone
}

// Next returns the following status, saturating at StatusDone.
func (s Status) Next() Status {
	if s < StatusDone {
		return s + 1
	}
	return s
}

// Prev returns the preceding status, saturating at StatusTodo.
func (s Status) Prev() Status {
	if s > StatusTodo {
		return s - 1
	}
	return s
}

// CanAdvance returns true if the status can move one column forward.
func (s Status) CanAdvance() bool {
	return s.IsValid() && s < StatusDone
}

// CanRetreat returns true if the status can move one column backward.
func (s Status) CanRetreat() bool {
	return s.IsValid() && s > StatusTodo
}

// Label returns the column label shown on the board.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "未対応"
	case StatusDoing:
		return "処理中"
	case StatusDone:
		return "完了"
	default:
		return fmt.Sprintf("status-%d", int(s))
	}
}

// Display returns an English name for the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To-Do"
	case StatusDoing:
		return "In-Progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// String returns the config/script name of the status.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusDoing:
		return "doing"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus parses a status name as used in config and script files.
// "in_progress" is accepted as an alias for "doing".
func ParseStatus(name string) (Status, error) {
	switch name {
	case "todo":
		return StatusTodo, nil
	case "doing", "in_progress":
		return StatusDoing, nil
	case "done":
		return StatusDone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

// Package domain contains the board state, its messages and the reducer.
package domain

import "fmt"

// Task is a unit of work shown as a card on the board.
// A task has no ID; it is identified by its position in State.Tasks.
type Task struct {
	Name     string
	Assignee string
	Mandays  int
	Status   Status
}

// MandaysLabel returns the effort estimate as shown on a card.
func (t Task) MandaysLabel() string {
	return fmt.Sprintf("%d person-days", t.Mandays)
}

// Assignees returns the fixed assignee tokens offered by the selector.
func Assignees() []string {
	return []string{"🐱", "🐶", "🐹"}
}

// IsKnownAssignee reports whether a is one of Assignees.
// The empty string is accepted since the selector starts unset.
func IsKnownAssignee(a string) bool {
	if a == "" {
		return true
	}
	for _, known := range Assignees() {
		if known == a {
			return true
		}
	}
	return false
}

// SeedTask is a task definition used to build the initial state.
type SeedTask struct {
	Name     string `toml:"name" yaml:"name"`
	Assignee string `toml:"assignee" yaml:"assignee"`
	Status   string `toml:"status" yaml:"status"`
	Mandays  int    `toml:"mandays" yaml:"mandays"`
}

// Validate checks a seed entry and converts it into a Task.
func (st SeedTask) Validate() (Task, error) {
	if st.Name == "" {
		return Task{}, ErrEmptyTaskName
	}
	if st.Mandays < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidMandays, st.Mandays)
	}
	if !IsKnownAssignee(st.Assignee) {
		return Task{}, fmt.Errorf("%w: %q", ErrUnknownAssignee, st.Assignee)
	}
	status := StatusTodo
	if st.Status != "" {
		s, err := ParseStatus(st.Status)
		if err != nil {
			return Task{}, err
		}
		status = s
	}
	return Task{
		Name:     st.Name,
		Assignee: st.Assignee,
		Mandays:  st.Mandays,
		Status:   status,
	}, nil
}

// DefaultSeed returns the example tasks the board starts with.
func DefaultSeed() []SeedTask {
	return []SeedTask{
		{Name: "Task 1", Assignee: "🐱", Mandays: 3, Status: "todo"},
		{Name: "Task 2", Assignee: "🐶", Mandays: 2, Status: "todo"},
		{Name: "Task 3", Assignee: "🐱", Mandays: 1, Status: "doing"},
		{Name: "Task 4", Assignee: "🐹", Mandays: 3, Status: "done"},
	}
}

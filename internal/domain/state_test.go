package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_Seed(t *testing.T) {
	s := NewState()

	require.Len(t, s.Tasks, 4)
	assert.Equal(t, Task{Name: "Task 1", Assignee: "🐱", Mandays: 3, Status: StatusTodo}, s.Tasks[0])
	assert.Equal(t, Task{Name: "Task 2", Assignee: "🐶", Mandays: 2, Status: StatusTodo}, s.Tasks[1])
	assert.Equal(t, Task{Name: "Task 3", Assignee: "🐱", Mandays: 1, Status: StatusDoing}, s.Tasks[2])
	assert.Equal(t, Task{Name: "Task 4", Assignee: "🐹", Mandays: 3, Status: StatusDone}, s.Tasks[3])

	assert.Empty(t, s.NewTaskName)
	assert.Empty(t, s.NewTaskAssignee)
	assert.Zero(t, s.NewTaskMandays)
}

func TestNewStateFromSeed_Invalid(t *testing.T) {
	_, err := NewStateFromSeed([]SeedTask{{Name: "ok"}, {Name: "bad", Status: "later"}})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewStateFromSeed_Empty(t *testing.T) {
	s, err := NewStateFromSeed(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Tasks)
}

func TestState_Clone_IsIndependent(t *testing.T) {
	s := NewState()
	c := s.Clone()

	c.Tasks[0].Name = "changed"
	c.Tasks = append(c.Tasks, Task{Name: "extra"})
	c.NewTaskName = "buffer"

	assert.Equal(t, "Task 1", s.Tasks[0].Name)
	assert.Len(t, s.Tasks, 4)
	assert.Empty(t, s.NewTaskName)
}

func TestState_Task(t *testing.T) {
	s := NewState()

	task, ok := s.Task(2)
	assert.True(t, ok)
	assert.Equal(t, "Task 3", task.Name)

	_, ok = s.Task(-1)
	assert.False(t, ok)
	_, ok = s.Task(4)
	assert.False(t, ok)
}

func TestState_CountByStatus_SumsToTotal(t *testing.T) {
	s := NewState()
	Apply(s, SubmitNewTask{})
	Apply(s, AdvanceStatus{Index: 1})
	Apply(s, RetreatStatus{Index: 3})

	total := 0
	for _, st := range AllStatuses() {
		total += s.CountByStatus(st)
	}
	assert.Equal(t, len(s.Tasks), total)
}

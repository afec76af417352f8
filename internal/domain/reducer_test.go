package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_AlwaysRequestsRender(t *testing.T) {
	msgs := []Msg{
		SetNewTaskName{Text: "x"},
		SetNewTaskAssignee{Event: ChangeInput{Value: "🐶"}},
		SetNewTaskMandays{Text: "abc"},
		SubmitNewTask{},
		AdvanceStatus{Index: 99},
		RetreatStatus{Index: -1},
	}
	s := NewState()
	for _, msg := range msgs {
		assert.True(t, Apply(s, msg), DescribeMsg(msg))
	}
}

func TestApply_SetNewTaskName(t *testing.T) {
	s := NewState()
	Apply(s, SetNewTaskName{Text: "  spaced  "})
	assert.Equal(t, "  spaced  ", s.NewTaskName)

	Apply(s, SetNewTaskName{Text: ""})
	assert.Equal(t, "", s.NewTaskName)
}

func TestApply_SetNewTaskAssignee(t *testing.T) {
	s := NewState()

	Apply(s, SetNewTaskAssignee{Event: ChangeSelect{Value: "🐶"}})
	assert.Equal(t, "🐶", s.NewTaskAssignee)

	Apply(s, SetNewTaskAssignee{Event: ChangeInput{Value: "🐹"}})
	assert.Equal(t, "🐶", s.NewTaskAssignee, "non-selection events keep the previous value")

	Apply(s, SetNewTaskAssignee{})
	assert.Equal(t, "🐶", s.NewTaskAssignee, "missing event keeps the previous value")
}

func TestApply_SetNewTaskMandays(t *testing.T) {
	s := NewState()

	Apply(s, SetNewTaskMandays{Text: "5"})
	assert.Equal(t, 5, s.NewTaskMandays)

	Apply(s, SetNewTaskMandays{Text: "abc"})
	assert.Equal(t, 5, s.NewTaskMandays)

	Apply(s, SetNewTaskMandays{Text: "-2"})
	assert.Equal(t, 5, s.NewTaskMandays)

	Apply(s, SetNewTaskMandays{Text: ""})
	assert.Equal(t, 5, s.NewTaskMandays)

	Apply(s, SetNewTaskMandays{Text: "0"})
	assert.Equal(t, 0, s.NewTaskMandays)
}

func TestParseMandays(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"0", 0, true},
		{"5", 5, true},
		{"007", 7, true},
		{"+4", 4, true},
		{"4294967295", 4294967295, true},
		{"4294967296", 0, false},
		{"", 0, false},
		{"+", 0, false},
		{"++4", 0, false},
		{"-1", 0, false},
		{" 3", 0, false},
		{"3 ", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMandays(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_SubmitNewTask(t *testing.T) {
	s := NewState()
	s.NewTaskName = "X"
	s.NewTaskAssignee = "🐱"
	s.NewTaskMandays = 2
	before := len(s.Tasks)

	Apply(s, SubmitNewTask{})

	require.Len(t, s.Tasks, before+1)
	assert.Equal(t, Task{Name: "X", Assignee: "🐱", Mandays: 2, Status: StatusTodo}, s.Tasks[len(s.Tasks)-1])
}

func TestApply_SubmitNewTask_KeepsBuffersByDefault(t *testing.T) {
	s := NewState()
	s.NewTaskName = "X"
	s.NewTaskAssignee = "🐹"
	s.NewTaskMandays = 2

	Apply(s, SubmitNewTask{})
	Apply(s, SubmitNewTask{})

	assert.Equal(t, "X", s.NewTaskName)
	assert.Equal(t, "🐹", s.NewTaskAssignee)
	assert.Equal(t, 2, s.NewTaskMandays)
	require.Len(t, s.Tasks, 6)
	assert.Equal(t, s.Tasks[4], s.Tasks[5], "submitting twice adds two identical tasks")
}

func TestReducer_SubmitNewTask_ResetForm(t *testing.T) {
	r := Reducer{ResetFormOnSubmit: true}
	s := NewState()
	r.Apply(s, SetNewTaskName{Text: "X"})
	r.Apply(s, SetNewTaskAssignee{Event: ChangeSelect{Value: "🐶"}})
	r.Apply(s, SetNewTaskMandays{Text: "8"})

	r.Apply(s, SubmitNewTask{})

	assert.Equal(t, Task{Name: "X", Assignee: "🐶", Mandays: 8, Status: StatusTodo}, s.Tasks[len(s.Tasks)-1])
	assert.Equal(t, "", s.NewTaskName)
	assert.Equal(t, "", s.NewTaskAssignee)
	assert.Equal(t, 0, s.NewTaskMandays)
}

func TestApply_SubmitNewTask_EmptyForm(t *testing.T) {
	s := NewState()
	Apply(s, SubmitNewTask{})
	assert.Equal(t, Task{Status: StatusTodo}, s.Tasks[len(s.Tasks)-1])
}

func TestApply_AdvanceStatus(t *testing.T) {
	s := NewState()

	Apply(s, AdvanceStatus{Index: 0})
	assert.Equal(t, StatusDoing, s.Tasks[0].Status)

	Apply(s, AdvanceStatus{Index: 0})
	assert.Equal(t, StatusDone, s.Tasks[0].Status)

	before := s.Clone()
	Apply(s, AdvanceStatus{Index: 0})
	assert.Equal(t, before, s, "advance on done is a no-op")
}

func TestApply_RetreatStatus(t *testing.T) {
	s := NewState()

	Apply(s, RetreatStatus{Index: 3})
	assert.Equal(t, StatusDoing, s.Tasks[3].Status)

	before := s.Clone()
	Apply(s, RetreatStatus{Index: 0})
	assert.Equal(t, before, s, "retreat on todo is a no-op")
}

func TestApply_OutOfRangeIndex(t *testing.T) {
	for _, idx := range []int{-1, 4, 100} {
		s := NewState()
		before := s.Clone()
		Apply(s, AdvanceStatus{Index: idx})
		Apply(s, RetreatStatus{Index: idx})
		assert.Equal(t, before, s, "index %d", idx)
	}
}

func TestApply_StatusStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := &State{Tasks: []Task{{Name: "T", Status: StatusTodo}}}

	for i := 0; i < 1000; i++ {
		if rng.Intn(2) == 0 {
			Apply(s, AdvanceStatus{Index: 0})
		} else {
			Apply(s, RetreatStatus{Index: 0})
		}
		require.True(t, s.Tasks[0].Status.IsValid(), "step %d: %v", i, s.Tasks[0].Status)
	}
}

func TestApply_AdvanceMovesBetweenColumns(t *testing.T) {
	s := NewState()
	require.Equal(t, StatusTodo, s.Tasks[0].Status)
	require.Equal(t, 2, s.CountByStatus(StatusTodo))
	require.Equal(t, 1, s.CountByStatus(StatusDoing))

	Apply(s, AdvanceStatus{Index: 0})

	assert.Equal(t, StatusDoing, s.Tasks[0].Status)
	assert.Equal(t, 1, s.CountByStatus(StatusTodo))
	assert.Equal(t, 2, s.CountByStatus(StatusDoing))
}

func TestApply_FormToNewTask(t *testing.T) {
	s := NewState()

	Apply(s, SetNewTaskName{Text: "Task 5"})
	Apply(s, SetNewTaskAssignee{Event: ChangeSelect{Value: "🐶"}})
	Apply(s, SetNewTaskMandays{Text: "4"})
	Apply(s, SubmitNewTask{})

	require.Len(t, s.Tasks, 5)
	assert.Equal(t, Task{Name: "Task 5", Assignee: "🐶", Mandays: 4, Status: StatusTodo}, s.Tasks[4])
}

func TestApply_UnknownMsgIsIgnored(t *testing.T) {
	s := NewState()
	before := s.Clone()
	assert.True(t, Apply(s, nil))
	assert.Equal(t, before, s)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_MandaysLabel(t *testing.T) {
	assert.Equal(t, "3 person-days", Task{Mandays: 3}.MandaysLabel())
	assert.Equal(t, "0 person-days", Task{}.MandaysLabel())
}

func TestIsKnownAssignee(t *testing.T) {
	for _, a := range Assignees() {
		assert.True(t, IsKnownAssignee(a), a)
	}
	assert.True(t, IsKnownAssignee(""))
	assert.False(t, IsKnownAssignee("🦊"))
}

func TestAssignees_Fixed(t *testing.T) {
	assert.Equal(t, []string{"🐱", "🐶", "🐹"}, Assignees())
}

func TestSeedTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seed    SeedTask
		want    Task
		wantErr error
	}{
		{
			name: "valid",
			seed: SeedTask{Name: "A", Assignee: "🐶", Mandays: 2, Status: "done"},
			want: Task{Name: "A", Assignee: "🐶", Mandays: 2, Status: StatusDone},
		},
		{
			name: "status defaults to todo",
			seed: SeedTask{Name: "B"},
			want: Task{Name: "B", Status: StatusTodo},
		},
		{
			name:    "empty name",
			seed:    SeedTask{Mandays: 1},
			wantErr: ErrEmptyTaskName,
		},
		{
			name:    "negative mandays",
			seed:    SeedTask{Name: "C", Mandays: -1},
			wantErr: ErrInvalidMandays,
		},
		{
			name:    "unknown status",
			seed:    SeedTask{Name: "D", Status: "blocked"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown assignee",
			seed:    SeedTask{Name: "E", Assignee: "🦊"},
			wantErr: ErrUnknownAssignee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.seed.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultSeed_IsValid(t *testing.T) {
	for i, st := range DefaultSeed() {
		_, err := st.Validate()
		assert.NoError(t, err, "seed %d", i)
	}
}

package domain

import (
	"errors"
	"testing"
)

func TestStatus_NextPrev(t *testing.T) {
	tests := []struct {
		name string
		from Status
		next Status
		prev Status
	}{
		{"todo", StatusTodo, StatusDoing, StatusTodo},
		{"doing", StatusDoing, StatusDone, StatusTodo},
		{"done", StatusDone, StatusDone, StatusDoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Next(); got != tt.next {
				t.Errorf("Next() = %v, want %v", got, tt.next)
			}
			if got := tt.from.Prev(); got != tt.prev {
				t.Errorf("Prev() = %v, want %v", got, tt.prev)
			}
		})
	}
}

func TestStatus_CanAdvanceRetreat(t *testing.T) {
	tests := []struct {
		status     Status
		canAdvance bool
		canRetreat bool
	}{
		{StatusTodo, true, false},
		{StatusDoing, true, true},
		{StatusDone, false, true},
		{Status(0), false, false},
		{Status(4), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.CanAdvance(); got != tt.canAdvance {
				t.Errorf("CanAdvance() = %v, want %v", got, tt.canAdvance)
			}
			if got := tt.status.CanRetreat(); got != tt.canRetreat {
				t.Errorf("CanRetreat() = %v, want %v", got, tt.canRetreat)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("%v should be valid", s)
		}
	}
	for _, s := range []Status{-1, 0, 4} {
		if s.IsValid() {
			t.Errorf("%d should not be valid", int(s))
		}
	}
}

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status Status
		label  string
	}{
		{StatusTodo, "未対応"},
		{StatusDoing, "処理中"},
		{StatusDone, "完了"},
		{Status(9), "status-9"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestStatus_Display(t *testing.T) {
	if got := StatusDoing.Display(); got != "In-Progress" {
		t.Errorf("Display() = %q, want %q", got, "In-Progress")
	}
	if got := Status(0).Display(); got != "Unknown" {
		t.Errorf("Display() = %q, want %q", got, "Unknown")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"doing", StatusDoing, false},
		{"in_progress", StatusDoing, false},
		{"done", StatusDone, false},
		{"DONE", 0, true},
		{"", 0, true},
		{"closed", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus_StringRoundTrip(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := ParseStatus(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v", s.String(), got, err)
		}
	}
}

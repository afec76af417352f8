package domain

// State is the whole application state: the task list plus the
// new-task form buffers. It is owned by a single caller and mutated
// only through Reducer.Apply.
type State struct {
	NewTaskName     string
	NewTaskAssignee string
	Tasks           []Task
	NewTaskMandays  int
}

// NewState returns the initial state seeded with the example tasks.
func NewState() *State {
	s, err := NewStateFromSeed(DefaultSeed())
	if err != nil {
		// DefaultSeed is static and always valid.
		panic(err)
	}
	return s
}

// NewStateFromSeed returns a state holding the given tasks and empty form buffers.
func NewStateFromSeed(seed []SeedTask) (*State, error) {
	tasks := make([]Task, 0, len(seed))
	for _, st := range seed {
		t, err := st.Validate()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return &State{Tasks: tasks}, nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Tasks = append([]Task(nil), s.Tasks...)
	return &c
}

// Task returns the task at index i. ok is false if i is out of range.
func (s *State) Task(i int) (Task, bool) {
	if i < 0 || i >= len(s.Tasks) {
		return Task{}, false
	}
	return s.Tasks[i], true
}

// CountByStatus returns how many tasks currently have the given status.
func (s *State) CountByStatus(status Status) int {
	n := 0
	for _, t := range s.Tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

func (s *State) addTask(name, assignee string, mandays int) {
	s.Tasks = append(s.Tasks, Task{
		Name:     name,
		Assignee: assignee,
		Mandays:  mandays,
		Status:   StatusTodo,
	})
}

func (s *State) advance(i int) {
	if i < 0 || i >= len(s.Tasks) {
		return
	}
	if t := &s.Tasks[i]; t.Status.CanAdvance() {
		t.Status = t.Status.Next()
	}
}

func (s *State) retreat(i int) {
	if i < 0 || i >= len(s.Tasks) {
		return
	}
	if t := &s.Tasks[i]; t.Status.CanRetreat() {
		t.Status = t.Status.Prev()
	}
}

func (s *State) resetForm() {
	s.NewTaskName = ""
	s.NewTaskAssignee = ""
	s.NewTaskMandays = 0
}

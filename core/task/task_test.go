package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/user"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "Pending", want: StatusPending},
		{in: "In Progress", want: StatusInProgress},
		{in: "Completed", want: StatusCompleted},
		{in: " Completed ", want: StatusCompleted},
		{in: "completed", wantErr: true},
		{in: "Done", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrStatusUnknown)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{name: "no tasks", want: 0},
		{
			name:  "none completed",
			tasks: []Task{{Status: StatusPending}, {Status: StatusInProgress}},
			want:  0,
		},
		{
			name:  "all completed",
			tasks: []Task{{Status: StatusCompleted}, {Status: StatusCompleted}},
			want:  100,
		},
		{
			// 1/3 floors to 33, never rounds up
			name:  "floored percentage",
			tasks: []Task{{Status: StatusCompleted}, {Status: StatusPending}, {Status: StatusPending}},
			want:  33,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.tasks))
		})
	}
}

func TestTask_Overdue(t *testing.T) {
	today := "2026-09-01"

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "past deadline", task: Task{Deadline: "2026-08-31", Status: StatusPending}, want: true},
		{name: "due today", task: Task{Deadline: today, Status: StatusPending}, want: false},
		{name: "future deadline", task: Task{Deadline: "2026-09-02", Status: StatusPending}, want: false},
		{name: "completed is never overdue", task: Task{Deadline: "2026-08-31", Status: StatusCompleted}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Overdue(today))
		})
	}
}

func TestNewTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    NewTask
		wantErr bool
	}{
		{name: "valid", task: NewTask{Title: "Report", Assignee: "jdoe", Deadline: "2026-09-15"}},
		{name: "missing title", task: NewTask{Assignee: "jdoe", Deadline: "2026-09-15"}, wantErr: true},
		{name: "missing assignee", task: NewTask{Title: "Report", Deadline: "2026-09-15"}, wantErr: true},
		{name: "malformed deadline", task: NewTask{Title: "Report", Assignee: "jdoe", Deadline: "15/09/2026"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// repo stub for service tests; the full in-memory implementation lives in
// storage/database/dummy but importing it here would be a cycle.
type stubRepo struct {
	tasks map[int]Task
	next  int
}

var _ Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo { return &stubRepo{tasks: make(map[int]Task)} }

func (r *stubRepo) CreateTask(t Task) (Task, error) {
	r.next++
	t.ID = r.next
	r.tasks[t.ID] = t
	return t, nil
}

func (r *stubRepo) GetTaskByID(id int) (Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *stubRepo) QueryAllTasks() ([]Task, error) {
	all := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		all = append(all, t)
	}
	return all, nil
}

func (r *stubRepo) QueryTasksByAssignee(uname string) ([]Task, error) {
	var res []Task
	for _, t := range r.tasks {
		if t.Assignee == uname {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r *stubRepo) QueryTasksByAssigner(fullName string) ([]Task, error) {
	var res []Task
	for _, t := range r.tasks {
		if t.Assigner == fullName {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r *stubRepo) QueryOpenTasksByAssignee(uname string) ([]Task, error) {
	var res []Task
	for _, t := range r.tasks {
		if t.Assignee == uname && t.Status != StatusCompleted {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r *stubRepo) UpdateTask(t Task) (Task, error) {
	if _, ok := r.tasks[t.ID]; !ok {
		return Task{}, ErrNotFound
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *stubRepo) DeleteTaskByID(id int) error {
	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubRepo) DeleteTasksByAssigner(fullName string) error {
	for id, t := range r.tasks {
		if t.Assigner == fullName {
			delete(r.tasks, id)
		}
	}
	return nil
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil)

	tsk, err := repo.CreateTask(Task{Title: "Report", Assignee: "jdoe", Deadline: "2026-09-15", Status: StatusPending})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(tsk.ID, "Done-ish")
		var vErr *core.ValidationError
		assert.ErrorAs(t, err, &vErr)

		unchanged, _ := repo.GetTaskByID(tsk.ID)
		assert.Equal(t, StatusPending, unchanged.Status)
	})

	t.Run("in progress does not stamp completion date", func(t *testing.T) {
		got, err := svc.UpdateStatus(tsk.ID, "In Progress")
		assert.NoError(t, err)
		assert.Equal(t, StatusInProgress, got.Status)
		assert.Empty(t, got.CompletionDate)
	})

	t.Run("completed stamps completion date", func(t *testing.T) {
		got, err := svc.UpdateStatus(tsk.ID, "Completed")
		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
		assert.Equal(t, core.Today(), got.CompletionDate)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.UpdateStatus(999, "Pending")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

type stubDirectory map[string]user.User

func (d stubDirectory) GetByUsername(uname string) (user.User, error) {
	usr, ok := d[uname]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func TestService_Assign(t *testing.T) {
	repo := newStubRepo()
	dir := stubDirectory{
		"jdoe": {Username: "jdoe", FullName: "John Doe", Department: "Science"},
		"alee": {Username: "alee", FullName: "Amy Lee"}, // no department
	}
	svc := NewService(repo, dir)

	t.Run("department inferred from assignee", func(t *testing.T) {
		tsk, err := svc.Assign(NewTask{Title: "Report", Assignee: "jdoe", Deadline: "2026-09-15"}, "Head Master")
		assert.NoError(t, err)
		assert.Equal(t, "Science", tsk.Department)
		assert.Equal(t, "Head Master", tsk.Assigner)
		assert.Equal(t, StatusPending, tsk.Status)
	})

	t.Run("unknown assignee falls back to General", func(t *testing.T) {
		tsk, err := svc.Assign(NewTask{Title: "Report", Assignee: "ghost", Deadline: "2026-09-15"}, "Head Master")
		assert.NoError(t, err)
		assert.Equal(t, "General", tsk.Department)
	})

	t.Run("assignee without department falls back to General", func(t *testing.T) {
		tsk, err := svc.Assign(NewTask{Title: "Report", Assignee: "alee", Deadline: "2026-09-15"}, "Head Master")
		assert.NoError(t, err)
		assert.Equal(t, "General", tsk.Department)
	})
}

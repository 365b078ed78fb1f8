package task

import "github.com/trezcool/edulog/core"

// Status is the closed set of task states. The update endpoint takes
// the new status from the URL path, so anything outside this set is a
// validation failure rather than a silent write.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

var AllStatuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	if st := Status(core.CleanString(s)); st.Valid() {
		return st, nil
	}
	return "", ErrStatusUnknown
}

// Task is an assignment. Assigner is a full name, Assignee a username;
// Department is inferred from the assignee at creation time and never
// re-synced if the assignee later moves departments.
type Task struct {
	ID             int    `json:"id" db:"id"`
	Title          string `json:"title" db:"title"`
	Description    string `json:"description" db:"description"`
	Assigner       string `json:"assigner" db:"assigner"`
	Assignee       string `json:"assignee" db:"assignee"`
	Department     string `json:"department" db:"department"`
	Deadline       string `json:"deadline" db:"deadline"`
	Status         Status `json:"status" db:"status"`
	CompletionDate string `json:"completion_date" db:"completion_date"`
}

func (t *Task) Completed() bool { return t.Status == StatusCompleted }

// Overdue reports whether an open task's deadline has passed.
func (t *Task) Overdue(today string) bool {
	return !t.Completed() && t.Deadline < today
}

// NewTask contains the information needed to assign a task.
type NewTask struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Assignee    string `json:"assignee" form:"assignee" validate:"required"`
	Deadline    string `json:"deadline" form:"deadline" validate:"required,isodate"`
}

func (nt *NewTask) Validate() error {
	nt.Title = core.CleanString(nt.Title)
	nt.Assignee = core.CleanString(nt.Assignee, true /* lower */)
	nt.Deadline = core.CleanString(nt.Deadline)
	return core.Validate.Struct(nt)
}

// CompletionRate returns floor(100 * completed / total); 0 when total is 0.
func CompletionRate(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	var done int
	for _, t := range tasks {
		if t.Completed() {
			done++
		}
	}
	return (done * 100) / len(tasks)
}

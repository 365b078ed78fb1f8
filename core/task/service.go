package task

import (
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/user"
)

var (
	ErrNotFound      = errors.New("task not found")
	ErrStatusUnknown = errors.New("unknown status")
)

type (
	Repository interface {
		CreateTask(t Task) (Task, error)
		GetTaskByID(id int) (Task, error)
		QueryAllTasks() ([]Task, error)
		QueryTasksByAssignee(username string) ([]Task, error)
		QueryTasksByAssigner(fullName string) ([]Task, error)
		// QueryOpenTasksByAssignee returns the assignee's tasks whose
		// status is not Completed.
		QueryOpenTasksByAssignee(username string) ([]Task, error)
		UpdateTask(t Task) (Task, error)
		DeleteTaskByID(id int) error
		DeleteTasksByAssigner(fullName string) error
	}

	// UserDirectory is the slice of the user service the task service
	// needs: department inference at assignment time.
	UserDirectory interface {
		GetByUsername(uname string) (user.User, error)
	}

	Service struct {
		repo  Repository
		users UserDirectory
	}
)

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// Assign creates a task from assigner (a full name) to the assignee.
// The task's department is the assignee's department at this moment;
// "General" when the assignee is unknown.
func (svc *Service) Assign(nt NewTask, assigner string) (Task, error) {
	if err := nt.Validate(); err != nil {
		return Task{}, err
	}

	dept := "General"
	if assignee, err := svc.users.GetByUsername(nt.Assignee); err == nil {
		if assignee.Department != "" {
			dept = assignee.Department
		}
	} else if err != user.ErrNotFound {
		return Task{}, errors.Wrap(err, "finding assignee")
	}

	return svc.repo.CreateTask(Task{
		Title:       nt.Title,
		Description: nt.Description,
		Assigner:    assigner,
		Assignee:    nt.Assignee,
		Department:  dept,
		Deadline:    nt.Deadline,
		Status:      StatusPending,
	})
}

func (svc *Service) GetByID(id int) (Task, error) {
	return svc.repo.GetTaskByID(id)
}

func (svc *Service) QueryAll() ([]Task, error) {
	return svc.repo.QueryAllTasks()
}

func (svc *Service) ByAssignee(uname string) ([]Task, error) {
	return svc.repo.QueryTasksByAssignee(core.CleanString(uname, true /* lower */))
}

func (svc *Service) ByAssigner(fullName string) ([]Task, error) {
	return svc.repo.QueryTasksByAssigner(fullName)
}

func (svc *Service) OpenByAssignee(uname string) ([]Task, error) {
	return svc.repo.QueryOpenTasksByAssignee(core.CleanString(uname, true /* lower */))
}

// UpdateStatus sets the task's status; the completion date is stamped
// only when the new status is Completed.
func (svc *Service) UpdateStatus(id int, newStatus string) (Task, error) {
	status, err := ParseStatus(newStatus)
	if err != nil {
		return Task{}, core.NewValidationError(err, core.FieldError{Field: "status", Error: err.Error()})
	}

	t, err := svc.repo.GetTaskByID(id)
	if err != nil {
		return Task{}, err
	}
	t.Status = status
	if status == StatusCompleted {
		t.CompletionDate = core.Today()
	}
	return svc.repo.UpdateTask(t)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteTaskByID(id)
}

// ClearByAssigner bulk-deletes every task the given full name assigned.
func (svc *Service) ClearByAssigner(fullName string) error {
	return svc.repo.DeleteTasksByAssigner(fullName)
}

package department

import "github.com/pkg/errors"

var (
	ErrNotFound = errors.New("department not found")
	ErrExists   = errors.New("a department with this name already exists")
)

type (
	Repository interface {
		CreateDepartment(dept Department) (Department, error)
		QueryAllDepartments() ([]Department, error)
		GetDepartmentByName(name string) (Department, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add creates a department. An existing name is silently ignored: the
// add form lives on a page that just redisplays the current list.
func (svc *Service) Add(nd NewDepartment) error {
	if err := nd.Validate(); err != nil {
		return err
	}
	if _, err := svc.repo.GetDepartmentByName(nd.Name); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}
	_, err := svc.repo.CreateDepartment(Department{Name: nd.Name})
	if err == ErrExists { // lost the race, same outcome
		return nil
	}
	return err
}

func (svc *Service) QueryAll() ([]Department, error) {
	return svc.repo.QueryAllDepartments()
}

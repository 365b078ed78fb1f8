package schedule

import "github.com/pkg/errors"

var ErrNotFound = errors.New("schedule not found")

type (
	Repository interface {
		CreateSchedule(s Schedule) (Schedule, error)
		QueryAllSchedules() ([]Schedule, error)
		// QueryVisibleSchedules returns schedules whose target is the
		// given department or the All sentinel, dated fromDate or later.
		// An empty fromDate applies no date floor.
		QueryVisibleSchedules(dept, fromDate string) ([]Schedule, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewSchedule, createdBy string) (Schedule, error) {
	if err := ns.Validate(); err != nil {
		return Schedule{}, err
	}
	return svc.repo.CreateSchedule(Schedule{
		Title:      ns.Title,
		TargetDept: ns.TargetDept,
		Date:       ns.Date,
		Time:       ns.Time,
		Mode:       ns.Mode,
		CreatedBy:  createdBy,
	})
}

// VisibleTo returns all schedules a member of dept can see, past ones included.
func (svc *Service) VisibleTo(dept string) ([]Schedule, error) {
	return svc.repo.QueryVisibleSchedules(dept, "")
}

// Upcoming returns the schedules visible to dept dated today or later.
func (svc *Service) Upcoming(dept, today string) ([]Schedule, error) {
	return svc.repo.QueryVisibleSchedules(dept, today)
}

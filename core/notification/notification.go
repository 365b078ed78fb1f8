// Package notification derives per-request alert strings from a user's
// open tasks and department-relevant schedules. Nothing is persisted:
// the list is recomputed on every authenticated page render unless the
// session's "cleared" flag is set.
package notification

import (
	"fmt"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/task"
	"github.com/trezcool/edulog/core/user"
)

type Service struct {
	tasks     *task.Service
	schedules *schedule.Service
}

func NewService(tasks *task.Service, schedules *schedule.Service) *Service {
	return &Service{tasks: tasks, schedules: schedules}
}

// ForUser recomputes the user's alerts as of today.
func (svc *Service) ForUser(usr user.User) ([]string, error) {
	tasks, err := svc.tasks.OpenByAssignee(usr.Username)
	if err != nil {
		return nil, err
	}
	schedules, err := svc.schedules.VisibleTo(usr.Department)
	if err != nil {
		return nil, err
	}
	return Build(tasks, schedules, core.Today()), nil
}

// Build assembles alert strings in source order, no dedup, no priority.
// Past schedules are silently excluded.
func Build(tasks []task.Task, schedules []schedule.Schedule, today string) []string {
	alerts := make([]string, 0, len(tasks)+len(schedules))

	for _, t := range tasks {
		switch {
		case t.Deadline < today:
			alerts = append(alerts, fmt.Sprintf("OVERDUE: %s", t.Title))
		case t.Deadline == today:
			alerts = append(alerts, fmt.Sprintf("DUE TODAY: %s", t.Title))
		}
	}

	for _, s := range schedules {
		switch {
		case s.Date == today:
			alerts = append(alerts, fmt.Sprintf("MEETING TODAY: %s @ %s", s.Title, s.Time))
		case s.Date > today:
			alerts = append(alerts, fmt.Sprintf("UPCOMING: %s (%s)", s.Title, s.Date))
		}
	}

	return alerts
}

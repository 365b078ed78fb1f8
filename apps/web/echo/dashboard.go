package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/meeting"
	"github.com/trezcool/edulog/core/task"
)

func (s *Server) leaderDashboard(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}

	assignedTasks, err := s.opts.TaskSvc.ByAssigner(usr.FullName)
	if err != nil {
		return errors.Wrap(err, "querying assigned tasks")
	}
	myTasks, err := s.opts.TaskSvc.ByAssignee(usr.Username)
	if err != nil {
		return errors.Wrap(err, "querying own tasks")
	}
	teamLogs, err := s.opts.MeetingSvc.ByDepartment(usr.Department)
	if err != nil {
		return errors.Wrap(err, "querying team meetings")
	}
	staff, err := s.opts.UserSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying staff")
	}
	depts, err := s.opts.DeptSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}
	schedules, err := s.opts.ScheduleSvc.Upcoming(usr.Department, core.Today())
	if err != nil {
		return errors.Wrap(err, "querying upcoming schedules")
	}

	return s.render(ctx, "dashboard_leader.html", echo.Map{
		"assigned_tasks": assignedTasks,
		"my_tasks":       myTasks,
		"team_logs":      teamLogs,
		"staff":          staff,
		"depts":          depts,
		"schedules":      schedules,
		"analytics": echo.Map{
			"rate":  task.CompletionRate(assignedTasks),
			"total": len(assignedTasks),
		},
	})
}

func (s *Server) adminDashboard(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}
	if !usr.IsAdmin() {
		return ctx.Redirect(http.StatusFound, "/employee_dashboard")
	}

	tasks, err := s.opts.TaskSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	staff, err := s.opts.UserSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying staff")
	}
	depts, err := s.opts.DeptSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}

	var pending int
	for _, t := range tasks {
		if !t.Completed() {
			pending++
		}
	}

	return s.render(ctx, "dashboard_admin.html", echo.Map{
		"tasks": tasks,
		"staff": staff,
		"depts": depts,
		"stats": echo.Map{
			"total":     len(tasks),
			"pending":   pending,
			"completed": len(tasks) - pending,
		},
	})
}

func (s *Server) employeeDashboard(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}

	allMeetings, err := s.opts.MeetingSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying meetings")
	}
	var attended, missed []meeting.Meeting
	for _, m := range allMeetings {
		if m.HasAttendee(usr.FullName) {
			attended = append(attended, m)
		}
		if m.HasAbsentee(usr.FullName) {
			missed = append(missed, m)
		}
	}

	myTasks, err := s.opts.TaskSvc.ByAssignee(usr.Username)
	if err != nil {
		return errors.Wrap(err, "querying own tasks")
	}
	schedules, err := s.opts.ScheduleSvc.Upcoming(usr.Department, core.Today())
	if err != nil {
		return errors.Wrap(err, "querying upcoming schedules")
	}

	return s.render(ctx, "dashboard_employee.html", echo.Map{
		"meetings":  attended,
		"tasks":     myTasks,
		"schedules": schedules,
		"stats": echo.Map{
			"attended": len(attended),
			"missed":   len(missed),
		},
	})
}

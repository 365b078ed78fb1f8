package echoweb

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/meeting"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/user"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) logMeetingForm(ctx echo.Context) error {
	staff, err := s.opts.UserSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying staff")
	}
	depts, err := s.opts.DeptSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}

	var heads []user.User
	for _, u := range staff {
		if u.IsHead() {
			heads = append(heads, u)
		}
	}

	return s.render(ctx, "dashboard_form.html", echo.Map{
		"staff_list": staff,
		"dept_heads": heads,
		"depts":      depts,
	})
}

func (s *Server) logMeeting(ctx echo.Context) error {
	var data meeting.NewMeeting
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMeeting")
	}
	if _, err := s.opts.MeetingSvc.Log(data); err != nil {
		return err
	}

	addFlash(ctx, "success", "Meeting Logged Successfully!")
	return ctx.Redirect(http.StatusFound, "/log_meeting")
}

func (s *Server) scheduleMeeting(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}

	var data schedule.NewSchedule
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSchedule")
	}
	if _, err = s.opts.ScheduleSvc.Create(data, usr.FullName); err != nil {
		return err
	}

	addFlash(ctx, "success", "Meeting Scheduled!")
	return s.redirectBack(ctx)
}

func (s *Server) meetingAnalytics(ctx echo.Context) error {
	var filter meeting.Filter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to Filter")
	}
	filter.Clean()
	if filter.Department == "" {
		filter.Department = meeting.AllDepartments
	}

	meetings, err := s.opts.MeetingSvc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering meetings")
	}
	depts, err := s.opts.DeptSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}

	stats := meeting.Analyze(meetings)
	return s.render(ctx, "meeting_analytics.html", echo.Map{
		"meetings": meetings,
		"depts":    depts,
		"kpi": echo.Map{
			"total":      stats.Total,
			"productive": stats.Productive,
			"efficiency": stats.Efficiency,
			"best_att":   stats.BestAttendance,
		},
		"dept_counts":     stats.DeptCounts,
		"absentee_counts": stats.AbsenteeCounts,
	})
}

// exportAnalytics streams the full meeting log as a workbook. The dept
// parameter only names the downloaded file; rows are never filtered.
func (s *Server) exportAnalytics(ctx echo.Context) error {
	meetings, err := s.opts.MeetingSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying meetings")
	}

	filename := meeting.ExportFilename(ctx.QueryParam("dept"))
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.WriteHeader(http.StatusOK)
	return meeting.WriteWorkbook(res, meetings)
}

func (s *Server) clearData(ctx echo.Context) error {
	if err := s.opts.MeetingSvc.Clear(); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/admin_dashboard")
}

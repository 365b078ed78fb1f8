package echoweb

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/task"
)

func (s *Server) assignTask(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}

	var data task.NewTask
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if _, err = s.opts.TaskSvc.Assign(data, usr.FullName); err != nil {
		return err
	}

	addFlash(ctx, "success", "Task Assigned!")
	return s.redirectBack(ctx)
}

func (s *Server) deleteTask(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}
	if err = s.opts.TaskSvc.Delete(id); err != nil {
		if err == task.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return s.redirectBack(ctx)
}

func (s *Server) clearLeaderTasks(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}
	if err = s.opts.TaskSvc.ClearByAssigner(usr.FullName); err != nil {
		return err
	}
	return s.redirectBack(ctx)
}

func (s *Server) updateStatus(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}
	// the router hands the segment back percent-escaped ("In%20Progress")
	status, err := url.PathUnescape(ctx.Param("status"))
	if err != nil {
		status = ctx.Param("status")
	}
	if _, err = s.opts.TaskSvc.UpdateStatus(id, status); err != nil {
		if err == task.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return s.redirectBack(ctx)
}

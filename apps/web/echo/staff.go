package echoweb

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/department"
	"github.com/trezcool/edulog/core/user"
)

func (s *Server) manageStaff(ctx echo.Context) error {
	staff, err := s.opts.UserSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying staff")
	}
	depts, err := s.opts.DeptSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}
	return s.render(ctx, "manage_staff.html", echo.Map{
		"staff": staff,
		"depts": depts,
	})
}

// createStaff surfaces creation failures back to the page instead of
// discarding them.
func (s *Server) createStaff(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(s.opts.UserSvc); err != nil {
		addFlash(ctx, "danger", validationMessage(err))
		return ctx.Redirect(http.StatusFound, "/manage_staff")
	}
	if _, err := s.opts.UserSvc.Create(data); err != nil {
		return err
	}

	addFlash(ctx, "success", "Staff member added.")
	return ctx.Redirect(http.StatusFound, "/manage_staff")
}

func (s *Server) editUser(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}
	origUsr, err := s.opts.UserSvc.GetByID(id)
	if err != nil {
		if err == user.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}

	var data user.UpdateUser
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUser")
	}
	if err = data.Validate(origUsr); err != nil {
		addFlash(ctx, "danger", validationMessage(err))
		return ctx.Redirect(http.StatusFound, "/manage_staff")
	}
	if _, err = s.opts.UserSvc.Update(id, data); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/manage_staff")
}

func (s *Server) deleteUser(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}
	ctxUsr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}
	// deleting oneself is always rejected
	if id == ctxUsr.ID {
		addFlash(ctx, "danger", "You cannot delete your own account.")
		return ctx.Redirect(http.StatusFound, "/manage_staff")
	}

	if err = s.opts.UserSvc.Delete(id); err != nil {
		if err == user.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.Redirect(http.StatusFound, "/manage_staff")
}

func (s *Server) addDepartment(ctx echo.Context) error {
	var data department.NewDepartment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDepartment")
	}
	if err := s.opts.DeptSvc.Add(data); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/manage_staff")
}

// validationMessage flattens a validation failure into a single flash line.
func validationMessage(err error) string {
	switch vErr := errors.Cause(err).(type) {
	case *core.ValidationError:
		if len(vErr.Fields) > 0 {
			return vErr.Fields[0].Field + ": " + vErr.Fields[0].Error
		}
		return vErr.Error()
	case validator.ValidationErrors:
		flds := core.TranslateValidationErrors(vErr)
		parts := make([]string, 0, len(flds))
		for _, fld := range flds {
			parts = append(parts, fld.Field+": "+fld.Error)
		}
		return strings.Join(parts, "; ")
	default:
		return err.Error()
	}
}

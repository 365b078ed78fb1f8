package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/user"
)

func (s *Server) index(ctx echo.Context) error {
	return s.render(ctx, "index.html", nil)
}

func (s *Server) loginForm(ctx echo.Context) error {
	return s.render(ctx, "login.html", nil)
}

func (s *Server) login(ctx echo.Context) error {
	claims, err := authenticate(ctx.FormValue("username"), ctx.FormValue("password"), s.opts.UserSvc)
	if err != nil {
		if err == errAuthenticationFailed {
			addFlash(ctx, "danger", "Invalid Credentials")
			return ctx.Redirect(http.StatusFound, "/login")
		}
		return err
	}

	token, err := GenerateToken(claims)
	if err != nil {
		return err
	}
	setAuthCookie(ctx, token)
	setNotificationsCleared(ctx, false)

	switch {
	case claims.IsAdmin:
		return ctx.Redirect(http.StatusFound, "/admin_dashboard")
	case claims.IsLeader:
		return ctx.Redirect(http.StatusFound, "/leader_dashboard")
	default:
		return ctx.Redirect(http.StatusFound, "/employee_dashboard")
	}
}

func (s *Server) logout(ctx echo.Context) error {
	clearAuthCookie(ctx)
	return ctx.Redirect(http.StatusFound, "/login")
}

func (s *Server) clearNotifications(ctx echo.Context) error {
	setNotificationsCleared(ctx, true)
	addFlash(ctx, "info", "Notifications cleared.")
	return s.redirectBack(ctx)
}

func (s *Server) settingsForm(ctx echo.Context) error {
	return s.render(ctx, "settings.html", nil)
}

func (s *Server) changePassword(ctx echo.Context) error {
	usr, err := getContextUser(ctx, s.opts.UserSvc)
	if err != nil {
		return err
	}

	var data user.ChangePassword
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChangePassword")
	}
	if err = s.opts.UserSvc.ChangePassword(usr, data); err != nil {
		switch errors.Cause(err).(type) {
		case *core.ValidationError, validator.ValidationErrors:
			addFlash(ctx, "danger", validationMessage(err))
			return ctx.Redirect(http.StatusFound, "/settings")
		}
		return err
	}

	addFlash(ctx, "success", "Password updated.")
	return ctx.Redirect(http.StatusFound, "/settings")
}

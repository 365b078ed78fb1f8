package echoweb

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/edulog/core/user"
	appfs "github.com/trezcool/edulog/fs"
)

type renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*renderer)(nil)

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(appfs.FS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// render executes a view with the ambient page context (current user,
// notifications, flashes) merged into data.
func (s *Server) render(ctx echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["flashes"] = popFlashes(ctx)

	var notifs []string
	if usr, err := getContextUser(ctx, s.opts.UserSvc); err == nil {
		// templates call pointer-receiver methods (IsAdmin/IsLeader), which
		// html/template can only reach through a pointer
		data["user"] = &usr
		if !notificationsCleared(ctx) {
			// the page still renders without notifications
			if notifs, err = s.opts.NotifSvc.ForUser(usr); err != nil {
				s.opts.Logger.Error("building notifications", err, usr)
			}
		}
	}
	data["notifications"] = notifs

	return ctx.Render(http.StatusOK, name, data)
}

// dashboardPath returns the landing page for a user's role.
func dashboardPath(usr user.User) string {
	switch {
	case usr.IsAdmin():
		return "/admin_dashboard"
	case usr.IsLeader():
		return "/leader_dashboard"
	default:
		return "/employee_dashboard"
	}
}

// redirectBack sends the browser back to the referring page, falling back
// to the user's dashboard.
func (s *Server) redirectBack(ctx echo.Context) error {
	if ref := ctx.Request().Referer(); ref != "" {
		return ctx.Redirect(http.StatusFound, ref)
	}
	if usr, err := getContextUser(ctx, s.opts.UserSvc); err == nil {
		return ctx.Redirect(http.StatusFound, dashboardPath(usr))
	}
	return ctx.Redirect(http.StatusFound, "/")
}

package echoweb

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/department"
	"github.com/trezcool/edulog/core/meeting"
	"github.com/trezcool/edulog/core/notification"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/task"
	"github.com/trezcool/edulog/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger
		UserSvc        *user.Service
		DeptSvc        *department.Service
		MeetingSvc     *meeting.Service
		TaskSvc        *task.Service
		ScheduleSvc    *schedule.Service
		NotifSvc       *notification.Service
	}

	Server struct {
		opts         *Options
		app          *echo.Echo
		serverErrors chan error
		shutdown     chan os.Signal
	}
)

func NewServer(opts *Options) *Server {
	s := &Server{
		opts:         opts,
		app:          echo.New(),
		serverErrors: make(chan error, 1),
		shutdown:     make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.Renderer = newRenderer()
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", s.index)
	s.app.GET("/login", s.loginForm)
	s.app.POST("/login", s.login)

	a := s.app.Group("", s.authRequired)
	a.GET("/logout", s.logout)
	a.GET("/clear_notifications", s.clearNotifications)

	a.GET("/admin_dashboard", s.adminDashboard)
	a.GET("/leader_dashboard", s.leaderDashboard, headMiddleware())
	a.GET("/employee_dashboard", s.employeeDashboard)

	a.GET("/log_meeting", s.logMeetingForm)
	a.POST("/log_meeting", s.logMeeting)
	a.POST("/schedule_meeting", s.scheduleMeeting)
	a.GET("/meeting_analytics", s.meetingAnalytics)
	a.GET("/export_analytics", s.exportAnalytics)
	a.POST("/clear_data", s.clearData)

	a.POST("/assign_task", s.assignTask)
	a.POST("/delete_task/:id", s.deleteTask)
	a.POST("/clear_leader_tasks", s.clearLeaderTasks)
	a.GET("/update_status/:id/:status", s.updateStatus)

	a.GET("/manage_staff", s.manageStaff, adminMiddleware())
	a.POST("/manage_staff", s.createStaff, adminMiddleware())
	a.POST("/edit_user/:id", s.editUser)
	a.POST("/delete_user/:id", s.deleteUser)
	a.POST("/add_department", s.addDepartment, adminMiddleware())

	a.GET("/settings", s.settingsForm)
	a.POST("/settings", s.changePassword)
}

// Start runs the listener; it blocks until the listener stops and reports
// its error on Errors().
func (s *Server) Start() {
	s.serverErrors <- s.app.Start(s.opts.Address)
}

func (s *Server) Errors() <-chan error {
	return s.serverErrors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

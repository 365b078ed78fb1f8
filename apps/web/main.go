package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echoweb "github.com/trezcool/edulog/apps/web/echo"
	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/department"
	"github.com/trezcool/edulog/core/meeting"
	"github.com/trezcool/edulog/core/notification"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/task"
	"github.com/trezcool/edulog/core/user"
	emailsvc "github.com/trezcool/edulog/services/email"
	logsvc "github.com/trezcool/edulog/services/logger"
	"github.com/trezcool/edulog/storage/database"
	sqlxrepos "github.com/trezcool/edulog/storage/database/sqlx"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()
	core.Conf = conf

	std := log.New(os.Stdout, "WEB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}()
	if err = database.Ping(db); err != nil {
		logger.Fatal(fmt.Sprintf("pinging database: %v", err), err)
	}
	engine, err := database.Engine(conf.DatabaseURL)
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
	if err = database.Migrate(db.DB, engine); err != nil {
		logger.Fatal(fmt.Sprintf("migrating database: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc)
	deptSvc := department.NewService(sqlxrepos.NewDepartmentRepository(db))
	meetingSvc := meeting.NewService(sqlxrepos.NewMeetingRepository(db))
	taskSvc := task.NewService(sqlxrepos.NewTaskRepository(db), usrSvc)
	scheduleSvc := schedule.NewService(sqlxrepos.NewScheduleRepository(db))
	notifSvc := notification.NewService(taskSvc, scheduleSvc)

	// =========================================================================
	// Start Web Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoweb.NewServer(&echoweb.Options{
		Address:     conf.Server.Addr,
		Logger:      logger,
		UserSvc:     usrSvc,
		DeptSvc:     deptSvc,
		MeetingSvc:  meetingSvc,
		TaskSvc:     taskSvc,
		ScheduleSvc: scheduleSvc,
		NotifSvc:    notifSvc,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

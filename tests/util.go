package testutil

import (
	"testing"
	"time"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/department"
	"github.com/trezcool/edulog/core/meeting"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/task"
	"github.com/trezcool/edulog/core/user"
)

// InitConf points core.Conf at the test configuration. Call first in
// every test that touches config-dependent code.
func InitConf() {
	if core.Conf == nil || !core.Conf.TestMode {
		core.Conf = core.NewTestConfig()
	}
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	uname, fullName, pwd string,
	role user.Role,
	dept string,
) user.User {
	t.Helper()

	now := time.Now().UTC()
	usr := user.User{
		Username:   uname,
		FullName:   fullName,
		Role:       role,
		Department: dept,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateDepartment(t *testing.T, repo department.Repository, name string) department.Department {
	t.Helper()

	dept, err := repo.CreateDepartment(department.Department{Name: name})
	if err != nil {
		t.Fatalf("CreateDepartment() failed: %v", err)
	}
	return dept
}

func CreateMeeting(t *testing.T, repo meeting.Repository, m meeting.Meeting) meeting.Meeting {
	t.Helper()

	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	m, err := repo.CreateMeeting(m)
	if err != nil {
		t.Fatalf("CreateMeeting() failed: %v", err)
	}
	return m
}

func CreateTask(t *testing.T, repo task.Repository, tsk task.Task) task.Task {
	t.Helper()

	if tsk.Status == "" {
		tsk.Status = task.StatusPending
	}
	tsk, err := repo.CreateTask(tsk)
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}
	return tsk
}

func CreateSchedule(t *testing.T, repo schedule.Repository, sched schedule.Schedule) schedule.Schedule {
	t.Helper()

	sched, err := repo.CreateSchedule(sched)
	if err != nil {
		t.Fatalf("CreateSchedule() failed: %v", err)
	}
	return sched
}

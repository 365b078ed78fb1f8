// Package dummydb provides in-memory repositories backing unit tests.
package dummydb

import (
	"sync"

	"github.com/trezcool/edulog/core/department"
	"github.com/trezcool/edulog/core/meeting"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/task"
	"github.com/trezcool/edulog/core/user"
)

type (
	DB struct {
		user       *userTable
		department *departmentTable
		meeting    *meetingTable
		task       *taskTable
		schedule   *scheduleTable
	}

	userTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*user.User
	}

	departmentTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*department.Department
	}

	meetingTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*meeting.Meeting
	}

	taskTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*task.Task
	}

	scheduleTable struct {
		sync.RWMutex
		pkCount int
		table   map[int]*schedule.Schedule
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[int]*user.User)},
		department: &departmentTable{table: make(map[int]*department.Department)},
		meeting:    &meetingTable{table: make(map[int]*meeting.Meeting)},
		task:       &taskTable{table: make(map[int]*task.Task)},
		schedule:   &scheduleTable{table: make(map[int]*schedule.Schedule)},
	}
	return db, nil
}

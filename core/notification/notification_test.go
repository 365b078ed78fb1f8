package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/schedule"
	"github.com/trezcool/edulog/core/task"
	"github.com/trezcool/edulog/core/user"
	dummydb "github.com/trezcool/edulog/storage/database/dummy"
)

// an overdue task alerts until its status becomes Completed
func TestService_ForUser(t *testing.T) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	taskRepo := dummydb.NewTaskRepository(db)
	schedRepo := dummydb.NewScheduleRepository(db)
	svc := NewService(task.NewService(taskRepo, nil), schedule.NewService(schedRepo))

	usr := user.User{Username: "jdoe", FullName: "John Doe", Department: "Science"}
	yesterday := time.Now().AddDate(0, 0, -1).Format(core.ISODateFormat)
	tsk, err := taskRepo.CreateTask(task.Task{
		Title:    "Grade papers",
		Assignee: usr.Username,
		Deadline: yesterday,
		Status:   task.StatusPending,
	})
	if err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}

	alerts, err := svc.ForUser(usr)
	if err != nil {
		t.Fatalf("ForUser() failed: %v", err)
	}
	assert.Contains(t, alerts, "OVERDUE: Grade papers")

	tsk.Status = task.StatusCompleted
	if _, err = taskRepo.UpdateTask(tsk); err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}

	alerts, err = svc.ForUser(usr)
	if err != nil {
		t.Fatalf("ForUser() failed: %v", err)
	}
	assert.NotContains(t, alerts, "OVERDUE: Grade papers")
}

func TestBuild(t *testing.T) {
	today := "2026-09-01"

	tests := []struct {
		name      string
		tasks     []task.Task
		schedules []schedule.Schedule
		want      []string
	}{
		{
			name: "no inputs",
			want: nil,
		},
		{
			name: "overdue task",
			tasks: []task.Task{
				{Title: "Grade papers", Deadline: "2026-08-30", Status: task.StatusPending},
			},
			want: []string{"OVERDUE: Grade papers"},
		},
		{
			name: "task due today",
			tasks: []task.Task{
				{Title: "Submit report", Deadline: today, Status: task.StatusInProgress},
			},
			want: []string{"DUE TODAY: Submit report"},
		},
		{
			name: "future task deadline is silent",
			tasks: []task.Task{
				{Title: "Plan syllabus", Deadline: "2026-09-10", Status: task.StatusPending},
			},
			want: nil,
		},
		{
			name: "schedule today and upcoming",
			schedules: []schedule.Schedule{
				{Title: "Staff briefing", Date: today, Time: "10:00"},
				{Title: "Board review", Date: "2026-09-05"},
			},
			want: []string{
				"MEETING TODAY: Staff briefing @ 10:00",
				"UPCOMING: Board review (2026-09-05)",
			},
		},
		{
			name: "past schedule is silently excluded",
			schedules: []schedule.Schedule{
				{Title: "Old meeting", Date: "2026-08-01", Time: "09:00"},
			},
			want: nil,
		},
		{
			name: "tasks come before schedules, source order, no dedup",
			tasks: []task.Task{
				{Title: "A", Deadline: "2026-08-30", Status: task.StatusPending},
				{Title: "A", Deadline: "2026-08-30", Status: task.StatusPending},
				{Title: "B", Deadline: today, Status: task.StatusPending},
			},
			schedules: []schedule.Schedule{
				{Title: "C", Date: "2026-09-02"},
			},
			want: []string{"OVERDUE: A", "OVERDUE: A", "DUE TODAY: B", "UPCOMING: C (2026-09-02)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.tasks, tt.schedules, today)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_VisibleTo(t *testing.T) {
	tests := []struct {
		name  string
		sched Schedule
		dept  string
		want  bool
	}{
		{name: "All is visible to every department", sched: Schedule{TargetDept: TargetAll}, dept: "Science", want: true},
		{name: "All is visible to empty department", sched: Schedule{TargetDept: TargetAll}, dept: "", want: true},
		{name: "matching department", sched: Schedule{TargetDept: "Science"}, dept: "Science", want: true},
		{name: "other department", sched: Schedule{TargetDept: "Science"}, dept: "Arts", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sched.VisibleTo(tt.dept))
		})
	}
}

func TestNewSchedule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sched   NewSchedule
		wantErr bool
	}{
		{name: "valid", sched: NewSchedule{Title: "Briefing", TargetDept: TargetAll, Date: "2026-09-10", Time: "10:00"}},
		{name: "specific department", sched: NewSchedule{Title: "Briefing", TargetDept: "Science", Date: "2026-09-10", Time: "10:00"}},
		{name: "missing title", sched: NewSchedule{TargetDept: TargetAll, Date: "2026-09-10", Time: "10:00"}, wantErr: true},
		{name: "malformed date", sched: NewSchedule{Title: "Briefing", TargetDept: TargetAll, Date: "10/09/2026", Time: "10:00"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sched.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	t.Run("no meetings", func(t *testing.T) {
		stats := Analyze(nil)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0, stats.Productive)
		assert.Equal(t, 0, stats.Efficiency)
		assert.Equal(t, "N/A", stats.BestAttendance)
		assert.Empty(t, stats.DeptCounts)
		assert.Empty(t, stats.AbsenteeCounts)
	})

	t.Run("efficiency floors", func(t *testing.T) {
		// 1 productive out of 3 -> 33, never rounded up
		stats := Analyze([]Meeting{
			{Department: "Science", Productive: ProductiveYes},
			{Department: "Science", Productive: ProductiveNo},
			{Department: "Arts", Productive: "No"},
		})
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 1, stats.Productive)
		assert.Equal(t, 33, stats.Efficiency)
	})

	t.Run("per-department counts keep first-encountered order", func(t *testing.T) {
		stats := Analyze([]Meeting{
			{Department: "Science", Absentees: "J. Doe, M. Lee"},
			{Department: "Arts", Absentees: ""},
			{Department: "Science", Absentees: "A. Poe"},
		})
		assert.Equal(t, []DeptCount{
			{Department: "Science", Count: 2},
			{Department: "Arts", Count: 1},
		}, stats.DeptCounts)
		assert.Equal(t, []DeptCount{
			{Department: "Science", Count: 3},
			{Department: "Arts", Count: 0},
		}, stats.AbsenteeCounts)
	})

	t.Run("absentee tokens are trimmed, empties dropped", func(t *testing.T) {
		stats := Analyze([]Meeting{
			{Department: "Science", Absentees: " J. Doe ,, M. Lee , "},
		})
		assert.Equal(t, []DeptCount{{Department: "Science", Count: 2}}, stats.AbsenteeCounts)
	})

	t.Run("best attendance is the fewest absentee tokens", func(t *testing.T) {
		// dept A: "J. Doe, M. Lee" = 2 tokens, dept B: "" = 0 -> B wins
		stats := Analyze([]Meeting{
			{Department: "A", Absentees: "J. Doe, M. Lee"},
			{Department: "B", Absentees: ""},
		})
		assert.Equal(t, "B", stats.BestAttendance)
	})

	t.Run("best attendance tie breaks by ascending sort", func(t *testing.T) {
		stats := Analyze([]Meeting{
			{Department: "Zoology", Absentees: ""},
			{Department: "Arts", Absentees: ""},
		})
		assert.Equal(t, "Arts", stats.BestAttendance)
	})
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		m      Meeting
		want   bool
	}{
		{name: "All matches all depts", filter: Filter{Department: AllDepartments}, m: Meeting{Department: "Science"}, want: true},
		{name: "empty dept matches blank-department logs only", m: Meeting{Department: "", DateOfMeeting: "2026-09-01"}, want: true},
		{name: "empty dept rejects named departments", m: Meeting{Department: "Science"}, want: false},
		{name: "dept match", filter: Filter{Department: "Science"}, m: Meeting{Department: "Science"}, want: true},
		{name: "dept mismatch", filter: Filter{Department: "Arts"}, m: Meeting{Department: "Science"}, want: false},
		{name: "month prefix match", filter: Filter{Department: AllDepartments, Month: "2026-09"}, m: Meeting{Department: "Science", DateOfMeeting: "2026-09-14"}, want: true},
		{name: "month prefix mismatch", filter: Filter{Department: AllDepartments, Month: "2026-08"}, m: Meeting{Department: "Science", DateOfMeeting: "2026-09-14"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.m))
		})
	}
}

package meeting

import (
	"strings"
	"time"

	"github.com/trezcool/edulog/core"
)

// Productivity flag values.
const (
	ProductiveYes = "Yes"
	ProductiveNo  = "No"
)

// Meeting is a logged (past) meeting. Attendees and Absentees are
// comma-separated full-name lists; membership is tested by exact token
// match, never substring containment.
type Meeting struct {
	ID                 int       `json:"id" db:"id"`
	Timestamp          time.Time `json:"timestamp" db:"timestamp"`
	DateOfMeeting      string    `json:"date_of_meeting" db:"date_of_meeting"`
	Department         string    `json:"department" db:"department"`
	DepartmentHead     string    `json:"department_head" db:"department_head"`
	MeetingType        string    `json:"meeting_type" db:"meeting_type"`
	Mode               string    `json:"mode" db:"mode"`
	Objective          string    `json:"objective" db:"objective"`
	Agenda             string    `json:"agenda" db:"agenda"`
	StartTime          string    `json:"start_time" db:"start_time"`
	EndTime            string    `json:"end_time" db:"end_time"`
	Attendees          string    `json:"attendees" db:"attendees"`
	Absentees          string    `json:"absentees" db:"absentees"`
	KeyDecisions       string    `json:"key_decisions" db:"key_decisions"`
	ActionItems        string    `json:"action_items" db:"action_items"`
	Productive         string    `json:"productive" db:"productive"`
	ProductivityReason string    `json:"productivity_reason" db:"productivity_reason"`
	SubmittedBy        string    `json:"submitted_by" db:"submitted_by"`
}

func (m *Meeting) HasAttendee(fullName string) bool {
	return core.ContainsName(m.Attendees, fullName)
}

func (m *Meeting) HasAbsentee(fullName string) bool {
	return core.ContainsName(m.Absentees, fullName)
}

// AbsenteeCount counts non-empty comma-separated absentee tokens.
func (m *Meeting) AbsenteeCount() int {
	return len(core.SplitNames(m.Absentees))
}

// NewMeeting contains the information needed to log a meeting.
// Missing optional fields default to placeholder text rather than
// rejecting the submission.
type NewMeeting struct {
	DateOfMeeting      string   `json:"date_of_meeting" form:"date_of_meeting" validate:"required,isodate"`
	Department         string   `json:"department" form:"department" validate:"required"`
	DepartmentHead     string   `json:"department_head" form:"department_head"`
	MeetingType        string   `json:"meeting_type" form:"meeting_type"`
	Mode               string   `json:"mode" form:"mode"`
	Objective          string   `json:"objective" form:"objective"`
	Agenda             string   `json:"agenda" form:"agenda"`
	StartTime          string   `json:"start_time" form:"start_time"`
	EndTime            string   `json:"end_time" form:"end_time"`
	Attendees          []string `json:"attendees" form:"attendees"`
	Absentees          []string `json:"absentees" form:"absentees"`
	KeyDecisions       string   `json:"key_decisions" form:"key_decisions"`
	ActionItems        string   `json:"action_items" form:"action_items"`
	Productive         string   `json:"productive" form:"productive" validate:"omitempty,oneof=Yes No"`
	ProductivityReason string   `json:"productivity_reason" form:"productivity_reason"`
	SubmittedBy        string   `json:"submitted_by" form:"submitted_by"`
}

func (nm *NewMeeting) Validate() error {
	nm.DateOfMeeting = core.CleanString(nm.DateOfMeeting)
	nm.Department = core.CleanString(nm.Department)

	if nm.MeetingType = core.CleanString(nm.MeetingType); nm.MeetingType == "" {
		nm.MeetingType = "General"
	}
	if nm.Agenda = core.CleanString(nm.Agenda); nm.Agenda == "" {
		nm.Agenda = "N/A"
	}
	if nm.KeyDecisions = core.CleanString(nm.KeyDecisions); nm.KeyDecisions == "" {
		nm.KeyDecisions = "None"
	}
	if nm.ActionItems = core.CleanString(nm.ActionItems); nm.ActionItems == "" {
		nm.ActionItems = "None"
	}

	return core.Validate.Struct(nm)
}

func (nm *NewMeeting) meeting() Meeting {
	return Meeting{
		Timestamp:          time.Now().UTC(),
		DateOfMeeting:      nm.DateOfMeeting,
		Department:         nm.Department,
		DepartmentHead:     nm.DepartmentHead,
		MeetingType:        nm.MeetingType,
		Mode:               nm.Mode,
		Objective:          nm.Objective,
		Agenda:             nm.Agenda,
		StartTime:          nm.StartTime,
		EndTime:            nm.EndTime,
		Attendees:          strings.Join(nm.Attendees, ", "),
		Absentees:          strings.Join(nm.Absentees, ", "),
		KeyDecisions:       nm.KeyDecisions,
		ActionItems:        nm.ActionItems,
		Productive:         nm.Productive,
		ProductivityReason: nm.ProductivityReason,
		SubmittedBy:        nm.SubmittedBy,
	}
}

// AllDepartments is the department-filter sentinel matching every
// department.
const AllDepartments = "All"

// Filter narrows meeting queries. Department is an exact match — the
// AllDepartments sentinel matches everything, an empty Department only
// meetings logged without one; Month is a YYYY-MM prefix match on the
// date string.
type Filter struct {
	Department string `query:"dept"`
	Month      string `query:"month"`
}

func (f *Filter) Clean() {
	f.Department = core.CleanString(f.Department)
	f.Month = core.CleanString(f.Month)
}

func (f *Filter) MatchesAllDepts() bool {
	return f.Department == AllDepartments
}

func (f *Filter) Matches(m Meeting) bool {
	if !f.MatchesAllDepts() && m.Department != f.Department {
		return false
	}
	if f.Month != "" && !strings.HasPrefix(m.DateOfMeeting, f.Month) {
		return false
	}
	return true
}

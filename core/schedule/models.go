package schedule

import "github.com/trezcool/edulog/core"

// TargetAll is the target-department sentinel meaning "visible to every
// department" rather than a real department name.
const TargetAll = "All"

// Schedule is an upcoming meeting announcement.
type Schedule struct {
	ID         int    `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	TargetDept string `json:"target_dept" db:"target_dept"`
	Date       string `json:"date" db:"date"`
	Time       string `json:"time" db:"time"`
	Mode       string `json:"mode" db:"mode"`
	CreatedBy  string `json:"created_by" db:"created_by"`
}

// VisibleTo reports whether the schedule is visible to users of dept.
func (s *Schedule) VisibleTo(dept string) bool {
	return s.TargetDept == TargetAll || s.TargetDept == dept
}

type NewSchedule struct {
	Title      string `json:"title" form:"title" validate:"required"`
	TargetDept string `json:"target_dept" form:"target_dept" validate:"required"`
	Date       string `json:"date" form:"date" validate:"required,isodate"`
	Time       string `json:"time" form:"time" validate:"required"`
	Mode       string `json:"mode" form:"mode"`
}

func (ns *NewSchedule) Validate() error {
	ns.Title = core.CleanString(ns.Title)
	ns.TargetDept = core.CleanString(ns.TargetDept)
	ns.Date = core.CleanString(ns.Date)
	return core.Validate.Struct(ns)
}

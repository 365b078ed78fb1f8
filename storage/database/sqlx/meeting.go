package sqlxrepos

import (
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/meeting"
)

type meetingRepository struct {
	db *sqlx.DB
}

var _ meeting.Repository = (*meetingRepository)(nil) // interface compliance check

func NewMeetingRepository(db *sqlx.DB) *meetingRepository {
	return &meetingRepository{db: db}
}

func (repo *meetingRepository) CreateMeeting(m meeting.Meeting) (meeting.Meeting, error) {
	q := repo.db.Rebind(`
		INSERT INTO meeting (timestamp, date_of_meeting, department, department_head, meeting_type, mode,
		                     objective, agenda, start_time, end_time, attendees, absentees,
		                     key_decisions, action_items, productive, productivity_reason, submitted_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := repo.db.QueryRow(
		q, m.Timestamp, m.DateOfMeeting, m.Department, m.DepartmentHead, m.MeetingType, m.Mode,
		m.Objective, m.Agenda, m.StartTime, m.EndTime, m.Attendees, m.Absentees,
		m.KeyDecisions, m.ActionItems, m.Productive, m.ProductivityReason, m.SubmittedBy,
	).Scan(&m.ID)
	if err != nil {
		return meeting.Meeting{}, errors.Wrap(err, "creating meeting")
	}
	return m, nil
}

func (repo *meetingRepository) QueryAllMeetings() ([]meeting.Meeting, error) {
	var meetings []meeting.Meeting
	if err := repo.db.Select(&meetings, `SELECT * FROM meeting ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying meetings")
	}
	return meetings, nil
}

func (repo *meetingRepository) FilterMeetings(filter meeting.Filter) ([]meeting.Meeting, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if !filter.MatchesAllDepts() {
		where = append(where, "department = ?")
		args = append(args, filter.Department)
	}
	if filter.Month != "" {
		where = append(where, "date_of_meeting LIKE ?")
		args = append(args, filter.Month+"%")
	}

	q := `SELECT * FROM meeting`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id"

	var meetings []meeting.Meeting
	if err := repo.db.Select(&meetings, repo.db.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "filtering meetings")
	}
	return meetings, nil
}

func (repo *meetingRepository) DeleteAllMeetings() error {
	if _, err := repo.db.Exec(`DELETE FROM meeting`); err != nil {
		return errors.Wrap(err, "deleting meetings")
	}
	return nil
}

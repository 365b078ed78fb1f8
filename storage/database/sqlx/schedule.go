package sqlxrepos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/schedule"
)

type scheduleRepository struct {
	db *sqlx.DB
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db *sqlx.DB) *scheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) CreateSchedule(s schedule.Schedule) (schedule.Schedule, error) {
	q := repo.db.Rebind(`
		INSERT INTO schedule (title, target_dept, date, time, mode, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := repo.db.QueryRow(q, s.Title, s.TargetDept, s.Date, s.Time, s.Mode, s.CreatedBy).Scan(&s.ID)
	if err != nil {
		return schedule.Schedule{}, errors.Wrap(err, "creating schedule")
	}
	return s, nil
}

func (repo *scheduleRepository) QueryAllSchedules() ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	if err := repo.db.Select(&schedules, `SELECT * FROM schedule ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying schedules")
	}
	return schedules, nil
}

func (repo *scheduleRepository) QueryVisibleSchedules(dept, fromDate string) ([]schedule.Schedule, error) {
	q := `SELECT * FROM schedule WHERE (target_dept = ? OR target_dept = ?)`
	args := []interface{}{schedule.TargetAll, dept}
	if fromDate != "" {
		q += ` AND date >= ?`
		args = append(args, fromDate)
	}
	q += ` ORDER BY id`

	var schedules []schedule.Schedule
	if err := repo.db.Select(&schedules, repo.db.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "querying visible schedules")
	}
	return schedules, nil
}

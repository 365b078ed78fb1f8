package dummydb

import (
	"sort"

	"github.com/trezcool/edulog/core/schedule"
)

type scheduleRepository struct {
	db *scheduleTable
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db *DB) schedule.Repository {
	return &scheduleRepository{db: db.schedule}
}

func (repo *scheduleRepository) query() []schedule.Schedule {
	schedules := make([]schedule.Schedule, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		schedules = append(schedules, *s)
	}
	sort.Slice(schedules, func(i, j int) bool { return schedules[i].ID < schedules[j].ID })
	return schedules
}

func (repo *scheduleRepository) CreateSchedule(s schedule.Schedule) (schedule.Schedule, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	s.ID = repo.db.pkCount
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *scheduleRepository) QueryAllSchedules() ([]schedule.Schedule, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *scheduleRepository) QueryVisibleSchedules(dept, fromDate string) ([]schedule.Schedule, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	schedules := make([]schedule.Schedule, 0)
	for _, s := range repo.query() {
		if !s.VisibleTo(dept) {
			continue
		}
		if fromDate != "" && s.Date < fromDate {
			continue
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

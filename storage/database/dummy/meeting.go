package dummydb

import (
	"sort"

	"github.com/trezcool/edulog/core/meeting"
)

type meetingRepository struct {
	db *meetingTable
}

var _ meeting.Repository = (*meetingRepository)(nil) // interface compliance check

func NewMeetingRepository(db *DB) meeting.Repository {
	return &meetingRepository{db: db.meeting}
}

func (repo *meetingRepository) query() []meeting.Meeting {
	meetings := make([]meeting.Meeting, 0, len(repo.db.table))
	for _, m := range repo.db.table {
		meetings = append(meetings, *m)
	}
	sort.Slice(meetings, func(i, j int) bool { return meetings[i].ID < meetings[j].ID })
	return meetings
}

func (repo *meetingRepository) CreateMeeting(m meeting.Meeting) (meeting.Meeting, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	m.ID = repo.db.pkCount
	repo.db.table[m.ID] = &m
	return m, nil
}

func (repo *meetingRepository) QueryAllMeetings() ([]meeting.Meeting, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *meetingRepository) FilterMeetings(filter meeting.Filter) ([]meeting.Meeting, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	meetings := make([]meeting.Meeting, 0)
	for _, m := range repo.query() {
		if filter.Matches(m) {
			meetings = append(meetings, m)
		}
	}
	return meetings, nil
}

func (repo *meetingRepository) DeleteAllMeetings() error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = make(map[int]*meeting.Meeting)
	return nil
}

package meeting

import "github.com/pkg/errors"

var ErrNotFound = errors.New("meeting not found")

type (
	Repository interface {
		CreateMeeting(m Meeting) (Meeting, error)
		QueryAllMeetings() ([]Meeting, error)
		// FilterMeetings applies AND on available Filter fields.
		FilterMeetings(filter Filter) ([]Meeting, error)
		DeleteAllMeetings() error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Log(nm NewMeeting) (Meeting, error) {
	if err := nm.Validate(); err != nil {
		return Meeting{}, err
	}
	return svc.repo.CreateMeeting(nm.meeting())
}

func (svc *Service) QueryAll() ([]Meeting, error) {
	return svc.repo.QueryAllMeetings()
}

func (svc *Service) Filter(filter Filter) ([]Meeting, error) {
	filter.Clean()
	return svc.repo.FilterMeetings(filter)
}

func (svc *Service) ByDepartment(dept string) ([]Meeting, error) {
	return svc.repo.FilterMeetings(Filter{Department: dept})
}

// Clear deletes every logged meeting (the admin clear-data action).
func (svc *Service) Clear() error {
	return svc.repo.DeleteAllMeetings()
}

package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("a user with this username already exists")
	ErrEmailExists    = errors.New("a user with this email already exists")
	ErrRoleUnknown    = errors.New("unknown role")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username, email string, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		GetUserByUsername(username string) (User, error)
		UpdateUser(usr User) (User, error)
		DeleteUserByID(id int) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func (svc *Service) checkUniqueness(uname, email string, exclUsers ...User) error {
	if err := svc.repo.CheckUsernameUniqueness(uname, email, exclUsers...); err != nil {
		var field string
		switch err {
		case ErrUsernameExists:
			field = "username"
		case ErrEmailExists:
			field = "email"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

// Create adds a new staff member. A blank password falls back to the
// configured default staff password; the initial credentials are mailed
// to the user when an email address is on file.
func (svc *Service) Create(nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		Username:    nu.Username,
		FullName:    nu.FullName,
		Email:       nu.Email,
		Role:        Role(nu.Role),
		Department:  nu.Department,
		Designation: nu.Designation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	pwd := nu.Password
	if pwd == "" {
		pwd = core.Conf.DefaultStaffPassword
	}
	if err := usr.SetPassword(pwd); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}

	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	svc.sendWelcomeEmail(usr, pwd)
	return usr, nil
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true /* lower */))
}

func (svc *Service) Update(id int, uu UpdateUser) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		return User{}, err
	}
	usr.FullName = uu.FullName
	usr.Role = Role(uu.Role)
	usr.Department = uu.Department
	usr.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateUser(usr)
}

// ChangePassword applies the password policy and stores the new hash.
func (svc *Service) ChangePassword(usr User, cp ChangePassword) error {
	cp.Username = usr.Username
	cp.FullName = usr.FullName
	if err := cp.Validate(); err != nil {
		return err
	}
	if err := usr.SetPassword(cp.NewPassword); err != nil {
		return errors.Wrap(err, "setting password")
	}
	usr.UpdatedAt = time.Now().UTC()
	if _, err := svc.repo.UpdateUser(usr); err != nil {
		return err
	}
	svc.sendPasswordChangedEmail(usr)
	return nil
}

// Delete removes exactly one user. Owned tasks and meeting references
// are not cascaded; they keep their username/full-name strings.
func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteUserByID(id)
}

func (svc *Service) sendWelcomeEmail(usr User, pwd string) {
	if usr.Email == "" || svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.FullName, Address: usr.Email}},
		Subject: "Your account is ready",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nAn account has been created for you.\n\nUsername: %s\nPassword: %s\n\n"+
				"Please change your password after your first login.",
			usr.FullName, usr.Username, pwd),
	})
}

func (svc *Service) sendPasswordChangedEmail(usr User) {
	if usr.Email == "" || svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.FullName, Address: usr.Email}},
		Subject: "Your password was changed",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYour password was just changed. If this was not you, contact your administrator immediately.",
			usr.FullName),
	})
}

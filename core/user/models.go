package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/edulog/core"
)

// Role is the closed set of access tiers. It gates every dashboard and
// mutation; arbitrary strings are rejected at the boundary.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleLeader   Role = "Leader"
	RoleEmployee Role = "Employee"
)

var AllRoles = []Role{RoleAdmin, RoleLeader, RoleEmployee}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func ParseRole(s string) (Role, error) {
	if r := Role(core.CleanString(s)); r.Valid() {
		return r, nil
	}
	return "", ErrRoleUnknown
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email,omitempty" db:"email"`
	Role         Role      `json:"role" db:"role"`
	Department   string    `json:"department" db:"department"`
	Designation  string    `json:"designation" db:"designation"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
func (u *User) IsLeader() bool { return u.Role == RoleLeader }

// IsHead reports whether the user may appear in department-head dropdowns.
func (u *User) IsHead() bool { return u.Role == RoleLeader || u.Role == RoleAdmin }

// NewUser contains information needed to create a new User.
// A blank Password falls back to the configured default staff password.
type NewUser struct {
	Username    string `json:"username" form:"username" validate:"required,min=3,alphanum_"`
	Password    string `json:"password" form:"password"`
	FullName    string `json:"full_name" form:"full_name" validate:"required"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	Role        string `json:"role" form:"role" validate:"required,role"`
	Department  string `json:"department" form:"department"`
	Designation string `json:"designation" form:"designation"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.FullName = core.CleanString(nu.FullName)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Role = core.CleanString(nu.Role)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(nu.Username, nu.Email)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	FullName   string `json:"full_name" form:"full_name"`
	Role       string `json:"role" form:"role" validate:"omitempty,role"`
	Department string `json:"department" form:"department"`
}

func (uu *UpdateUser) Validate(origUsr User) error {
	name := core.CleanString(uu.FullName)
	if name != "" {
		uu.FullName = name
	} else {
		uu.FullName = origUsr.FullName
	}

	role := core.CleanString(uu.Role)
	if role != "" {
		uu.Role = role
	} else {
		uu.Role = string(origUsr.Role)
	}

	if uu.Department == "" {
		uu.Department = origUsr.Department
	}

	return core.Validate.Struct(uu)
}

// ChangePassword carries a password chosen by the user themselves;
// the password policy applies (unlike the default staff password).
type ChangePassword struct {
	NewPassword string `json:"new_password" form:"new_password" validate:"required"`

	// attributes of the user changing their password, used by the
	// similarity check
	Username string `json:"-"`
	FullName string `json:"-"`
}

func (cp *ChangePassword) Validate() error {
	return core.Validate.Struct(cp)
}

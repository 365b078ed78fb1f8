package main

import (
	"time"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(uname, email, fullName, pwd string, isAdmin bool) error {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)
	now := time.Now().UTC()

	usr, err := cli.usrRepo.GetUserByUsername(uname)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{
			Username:  uname,
			Role:      user.RoleEmployee,
			CreatedAt: now,
		}
	}
	if email != "" {
		usr.Email = email
	}
	if fullName != "" {
		usr.FullName = core.CleanString(fullName)
	}
	if isAdmin {
		usr.Role = user.RoleAdmin
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	usr.UpdatedAt = now

	if usr.ID == 0 {
		_, err = cli.usrRepo.CreateUser(usr)
	} else {
		_, err = cli.usrRepo.UpdateUser(usr)
	}
	return err
}

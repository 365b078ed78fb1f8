package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckUsernameUniqueness(username, email string, excludedUsers ...user.User) error {
	q := repo.db.Rebind(`SELECT id, username, email FROM "user" WHERE username = ? OR (email <> '' AND email = ?)`)

	var matches []user.User
	if err := repo.db.Select(&matches, q, username, email); err != nil {
		return errors.Wrap(err, "checking uniqueness")
	}

	for _, m := range matches {
		if isExcluded(m, excludedUsers) {
			continue
		}
		if m.Username == username {
			return user.ErrUsernameExists
		}
		if email != "" && m.Email == email {
			return user.ErrEmailExists
		}
	}
	return nil
}

func isExcluded(usr user.User, excluded []user.User) bool {
	for _, ex := range excluded {
		if usr.ID == ex.ID {
			return true
		}
	}
	return false
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	q := repo.db.Rebind(`
		INSERT INTO "user" (username, password_hash, full_name, email, role, department, designation, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := repo.db.QueryRow(
		q, usr.Username, usr.PasswordHash, usr.FullName, usr.Email, usr.Role,
		usr.Department, usr.Designation, usr.CreatedAt, usr.UpdatedAt,
	).Scan(&usr.ID)
	if err != nil {
		return user.User{}, errors.Wrap(err, "creating user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	var users []user.User
	if err := repo.db.Select(&users, `SELECT * FROM "user" ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return users, nil
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	var usr user.User
	q := repo.db.Rebind(`SELECT * FROM "user" WHERE id = ?`)
	if err := repo.db.Get(&usr, q, id); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by id")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	var usr user.User
	q := repo.db.Rebind(`SELECT * FROM "user" WHERE username = ?`)
	if err := repo.db.Get(&usr, q, username); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by username")
	}
	return usr, nil
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	q := repo.db.Rebind(`
		UPDATE "user"
		SET username = ?, password_hash = ?, full_name = ?, email = ?, role = ?, department = ?, designation = ?, updated_at = ?
		WHERE id = ?`)
	res, err := repo.db.Exec(
		q, usr.Username, usr.PasswordHash, usr.FullName, usr.Email, usr.Role,
		usr.Department, usr.Designation, usr.UpdatedAt, usr.ID,
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) DeleteUserByID(id int) error {
	q := repo.db.Rebind(`DELETE FROM "user" WHERE id = ?`)
	res, err := repo.db.Exec(q, id)
	if err != nil {
		return errors.Wrap(err, "deleting user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}
	return nil
}

package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/department"
)

type departmentRepository struct {
	db *sqlx.DB
}

var _ department.Repository = (*departmentRepository)(nil) // interface compliance check

func NewDepartmentRepository(db *sqlx.DB) *departmentRepository {
	return &departmentRepository{db: db}
}

func (repo *departmentRepository) CreateDepartment(dept department.Department) (department.Department, error) {
	q := repo.db.Rebind(`INSERT INTO department (name) VALUES (?) RETURNING id`)
	if err := repo.db.QueryRow(q, dept.Name).Scan(&dept.ID); err != nil {
		return department.Department{}, errors.Wrap(err, "creating department")
	}
	return dept, nil
}

func (repo *departmentRepository) QueryAllDepartments() ([]department.Department, error) {
	var depts []department.Department
	if err := repo.db.Select(&depts, `SELECT * FROM department ORDER BY name`); err != nil {
		return nil, errors.Wrap(err, "querying departments")
	}
	return depts, nil
}

func (repo *departmentRepository) GetDepartmentByName(name string) (department.Department, error) {
	var dept department.Department
	q := repo.db.Rebind(`SELECT * FROM department WHERE name = ?`)
	if err := repo.db.Get(&dept, q, name); err != nil {
		if err == sql.ErrNoRows {
			return department.Department{}, department.ErrNotFound
		}
		return department.Department{}, errors.Wrap(err, "getting department by name")
	}
	return dept, nil
}

package dummydb

import (
	"sort"

	"github.com/trezcool/edulog/core/department"
)

type departmentRepository struct {
	db *departmentTable
}

var _ department.Repository = (*departmentRepository)(nil) // interface compliance check

func NewDepartmentRepository(db *DB) department.Repository {
	return &departmentRepository{db: db.department}
}

func (repo *departmentRepository) CreateDepartment(dept department.Department) (department.Department, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, d := range repo.db.table {
		if d.Name == dept.Name {
			return department.Department{}, department.ErrExists
		}
	}
	repo.db.pkCount++
	dept.ID = repo.db.pkCount
	repo.db.table[dept.ID] = &dept
	return dept, nil
}

func (repo *departmentRepository) QueryAllDepartments() ([]department.Department, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	depts := make([]department.Department, 0, len(repo.db.table))
	for _, d := range repo.db.table {
		depts = append(depts, *d)
	}
	sort.Slice(depts, func(i, j int) bool { return depts[i].Name < depts[j].Name })
	return depts, nil
}

func (repo *departmentRepository) GetDepartmentByName(name string) (department.Department, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, d := range repo.db.table {
		if d.Name == name {
			return *d, nil
		}
	}
	return department.Department{}, department.ErrNotFound
}

package dummydb

import (
	"sort"

	"github.com/trezcool/edulog/core/task"
)

type taskRepository struct {
	db *taskTable
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) query(keep func(task.Task) bool) []task.Task {
	tasks := make([]task.Task, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		if keep == nil || keep(*t) {
			tasks = append(tasks, *t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkCount++
	t.ID = repo.db.pkCount
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *taskRepository) GetTaskByID(id int) (task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(nil), nil
}

func (repo *taskRepository) QueryTasksByAssignee(username string) ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(func(t task.Task) bool { return t.Assignee == username }), nil
}

func (repo *taskRepository) QueryTasksByAssigner(fullName string) ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(func(t task.Task) bool { return t.Assigner == fullName }), nil
}

func (repo *taskRepository) QueryOpenTasksByAssignee(username string) ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(func(t task.Task) bool { return t.Assignee == username && !t.Completed() }), nil
}

func (repo *taskRepository) UpdateTask(t task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[t.ID]; !ok {
		return task.Task{}, task.ErrNotFound
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *taskRepository) DeleteTaskByID(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return task.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *taskRepository) DeleteTasksByAssigner(fullName string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for id, t := range repo.db.table {
		if t.Assigner == fullName {
			delete(repo.db.table, id)
		}
	}
	return nil
}

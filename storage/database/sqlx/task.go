package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/edulog/core/task"
)

type taskRepository struct {
	db *sqlx.DB
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *sqlx.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	q := repo.db.Rebind(`
		INSERT INTO task (title, description, assigner, assignee, department, deadline, status, completion_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := repo.db.QueryRow(
		q, t.Title, t.Description, t.Assigner, t.Assignee, t.Department, t.Deadline, t.Status, t.CompletionDate,
	).Scan(&t.ID)
	if err != nil {
		return task.Task{}, errors.Wrap(err, "creating task")
	}
	return t, nil
}

func (repo *taskRepository) GetTaskByID(id int) (task.Task, error) {
	var t task.Task
	q := repo.db.Rebind(`SELECT * FROM task WHERE id = ?`)
	if err := repo.db.Get(&t, q, id); err != nil {
		if err == sql.ErrNoRows {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "getting task by id")
	}
	return t, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	var tasks []task.Task
	if err := repo.db.Select(&tasks, `SELECT * FROM task ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying tasks")
	}
	return tasks, nil
}

func (repo *taskRepository) QueryTasksByAssignee(username string) ([]task.Task, error) {
	var tasks []task.Task
	q := repo.db.Rebind(`SELECT * FROM task WHERE assignee = ? ORDER BY id`)
	if err := repo.db.Select(&tasks, q, username); err != nil {
		return nil, errors.Wrap(err, "querying tasks by assignee")
	}
	return tasks, nil
}

func (repo *taskRepository) QueryTasksByAssigner(fullName string) ([]task.Task, error) {
	var tasks []task.Task
	q := repo.db.Rebind(`SELECT * FROM task WHERE assigner = ? ORDER BY id`)
	if err := repo.db.Select(&tasks, q, fullName); err != nil {
		return nil, errors.Wrap(err, "querying tasks by assigner")
	}
	return tasks, nil
}

func (repo *taskRepository) QueryOpenTasksByAssignee(username string) ([]task.Task, error) {
	var tasks []task.Task
	q := repo.db.Rebind(`SELECT * FROM task WHERE assignee = ? AND status <> ? ORDER BY id`)
	if err := repo.db.Select(&tasks, q, username, task.StatusCompleted); err != nil {
		return nil, errors.Wrap(err, "querying open tasks by assignee")
	}
	return tasks, nil
}

func (repo *taskRepository) UpdateTask(t task.Task) (task.Task, error) {
	q := repo.db.Rebind(`
		UPDATE task
		SET title = ?, description = ?, assigner = ?, assignee = ?, department = ?, deadline = ?, status = ?, completion_date = ?
		WHERE id = ?`)
	res, err := repo.db.Exec(
		q, t.Title, t.Description, t.Assigner, t.Assignee, t.Department, t.Deadline, t.Status, t.CompletionDate, t.ID,
	)
	if err != nil {
		return task.Task{}, errors.Wrap(err, "updating task")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.Task{}, task.ErrNotFound
	}
	return t, nil
}

func (repo *taskRepository) DeleteTaskByID(id int) error {
	q := repo.db.Rebind(`DELETE FROM task WHERE id = ?`)
	res, err := repo.db.Exec(q, id)
	if err != nil {
		return errors.Wrap(err, "deleting task")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (repo *taskRepository) DeleteTasksByAssigner(fullName string) error {
	q := repo.db.Rebind(`DELETE FROM task WHERE assigner = ?`)
	if _, err := repo.db.Exec(q, fullName); err != nil {
		return errors.Wrap(err, "deleting tasks by assigner")
	}
	return nil
}

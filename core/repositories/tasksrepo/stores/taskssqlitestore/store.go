// Package taskssqlitestore implements tasksrepo.Storer on SQLite. Dates
// are stored as YYYY-MM-DD text.
package taskssqlitestore

import (
	"context"
	"database/sql"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

const columns = `id, title, description, author_id, created_at, priority, due_date, state`

type Store struct {
	log *logger.Logger
	db  *sqlitedb.DB
}

func NewStore(log *logger.Logger, db *sqlitedb.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (tasksrepo.Task, error) {
	var t tasksrepo.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.AuthorID, sqlitedb.Date(&t.CreatedAt),
		&t.Priority, sqlitedb.Date(&t.DueDate), &t.State)
	return t, err
}

func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, storeerr.SQLite(err)
	}
	defer rows.Close()

	tasks := []tasksrepo.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, storeerr.SQLite(err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeerr.SQLite(err)
	}
	return tasks, nil
}

func (s *Store) Get(ctx context.Context, id int64) (tasksrepo.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM tasks WHERE id = ?`, id))
	if err != nil {
		return tasksrepo.Task{}, storeerr.SQLite(err)
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	query := `
		INSERT INTO tasks (title, description, author_id, created_at, priority, due_date, state)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + columns

	row := s.db.QueryRowContext(ctx, query, task.Title, task.Description, task.AuthorID,
		validation.FormatDate(task.CreatedAt), string(task.Priority), validation.FormatDate(task.DueDate), string(task.State))

	t, err := scanTask(row)
	if err != nil {
		return tasksrepo.Task{}, storeerr.SQLite(err)
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, id int64, patch tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	var updated tasksrepo.Task

	err := sqlitedb.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		task, err := scanTask(tx.QueryRowContext(ctx, `SELECT `+columns+` FROM tasks WHERE id = ?`, id))
		if err != nil {
			return err
		}

		patch.Apply(&task)

		query := `
			UPDATE tasks
			SET title = ?, description = ?, author_id = ?, created_at = ?, priority = ?, due_date = ?, state = ?
			WHERE id = ?
			RETURNING ` + columns

		updated, err = scanTask(tx.QueryRowContext(ctx, query, task.Title, task.Description, task.AuthorID,
			validation.FormatDate(task.CreatedAt), string(task.Priority), validation.FormatDate(task.DueDate),
			string(task.State), id))
		return err
	})
	if err != nil {
		return tasksrepo.Task{}, storeerr.SQLite(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	err := sqlitedb.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
	return storeerr.SQLite(err)
}

var _ tasksrepo.Storer = (*Store)(nil)

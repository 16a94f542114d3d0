// Package subtaskssqlitestore implements subtasksrepo.Storer on SQLite.
package subtaskssqlitestore

import (
	"context"
	"database/sql"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

const columns = `id, title, created_at, is_done, task_id`

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

func scanSubTask(row scanner) (subtasksrepo.SubTask, error) {
	var st subtasksrepo.SubTask
	err := row.Scan(&st.ID, &st.Title, sqlitedb.Date(&st.CreatedAt), &st.IsDone, &st.TaskID)
	return st, err
}

func (s *Store) List(ctx context.Context) ([]subtasksrepo.SubTask, error) {
	return s.queryAll(ctx, `SELECT `+columns+` FROM subtasks ORDER BY id`)
}

func (s *Store) ListByTask(ctx context.Context, taskID int64) ([]subtasksrepo.SubTask, error) {
	return s.queryAll(ctx, `SELECT `+columns+` FROM subtasks WHERE task_id = ? ORDER BY id`, taskID)
}

func (s *Store) Get(ctx context.Context, id int64) (subtasksrepo.SubTask, error) {
	st, err := scanSubTask(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM subtasks WHERE id = ?`, id))
	if err != nil {
		return subtasksrepo.SubTask{}, storeerr.SQLite(err)
	}
	return st, nil
}

func (s *Store) Create(ctx context.Context, st subtasksrepo.SubTask) (subtasksrepo.SubTask, error) {
	query := `
		INSERT INTO subtasks (title, created_at, is_done, task_id)
		VALUES (?, ?, ?, ?)
		RETURNING ` + columns

	created, err := scanSubTask(s.db.QueryRowContext(ctx, query, st.Title, validation.FormatDate(st.CreatedAt), st.IsDone, st.TaskID))
	if err != nil {
		return subtasksrepo.SubTask{}, storeerr.SQLite(err)
	}
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, patch subtasksrepo.UpdateSubTask) (subtasksrepo.SubTask, error) {
	var updated subtasksrepo.SubTask

	err := sqlitedb.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		st, err := scanSubTask(tx.QueryRowContext(ctx, `SELECT `+columns+` FROM subtasks WHERE id = ?`, id))
		if err != nil {
			return err
		}

		patch.Apply(&st)

		query := `
			UPDATE subtasks
			SET title = ?, created_at = ?, is_done = ?, task_id = ?
			WHERE id = ?
			RETURNING ` + columns

		updated, err = scanSubTask(tx.QueryRowContext(ctx, query, st.Title, validation.FormatDate(st.CreatedAt),
			st.IsDone, st.TaskID, id))
		return err
	})
	if err != nil {
		return subtasksrepo.SubTask{}, storeerr.SQLite(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = ?`, id)
	if err != nil {
		return storeerr.SQLite(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeerr.SQLite(err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (s *Store) queryAll(ctx context.Context, query string, args ...any) ([]subtasksrepo.SubTask, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeerr.SQLite(err)
	}
	defer rows.Close()

	subtasks := []subtasksrepo.SubTask{}
	for rows.Next() {
		st, err := scanSubTask(rows)
		if err != nil {
			return nil, storeerr.SQLite(err)
		}
		subtasks = append(subtasks, st)
	}
	if err := rows.Err(); err != nil {
		return nil, storeerr.SQLite(err)
	}
	return subtasks, nil
}

var _ subtasksrepo.Storer = (*Store)(nil)

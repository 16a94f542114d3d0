package taskspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/sdk/logger"
)

const columns = `id, title, description, author_id, created_at, priority, due_date, state`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+columns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, storeerr.Postgres(err)
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, storeerr.Postgres(err)
	}
	return tasks, nil
}

func (s *Store) Get(ctx context.Context, id int64) (tasksrepo.Task, error) {
	return queryOne(ctx, s.pool, `SELECT `+columns+` FROM tasks WHERE id = @id`, pgx.NamedArgs{"id": id})
}

func (s *Store) Create(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	query := `
		INSERT INTO tasks (title, description, author_id, created_at, priority, due_date, state)
		VALUES (@title, @description, @author_id, @created_at, @priority, @due_date, @state)
		RETURNING ` + columns

	return queryOne(ctx, s.pool, query, taskArgs(task))
}

func (s *Store) Update(ctx context.Context, id int64, patch tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	var updated tasksrepo.Task

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		task, err := queryOne(ctx, tx, `SELECT `+columns+` FROM tasks WHERE id = @id FOR UPDATE`, pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}

		patch.Apply(&task)

		query := `
			UPDATE tasks
			SET title = @title, description = @description, author_id = @author_id, created_at = @created_at,
				priority = @priority, due_date = @due_date, state = @state
			WHERE id = @id
			RETURNING ` + columns

		args := taskArgs(task)
		args["id"] = id
		updated, err = queryOne(ctx, tx, query, args)
		return err
	})
	if err != nil {
		return tasksrepo.Task{}, storeerr.Postgres(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{"id": id}

		if _, err := tx.Exec(ctx, `DELETE FROM subtasks WHERE task_id = @id`, args); err != nil {
			return storeerr.Postgres(err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = @id`, args)
		if err != nil {
			return storeerr.Postgres(err)
		}
		if tag.RowsAffected() == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
	return storeerr.Postgres(err)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryOne(ctx context.Context, q querier, query string, args pgx.NamedArgs) (tasksrepo.Task, error) {
	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, storeerr.Postgres(err)
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, storeerr.Postgres(err)
	}
	return task, nil
}

func taskArgs(t tasksrepo.Task) pgx.NamedArgs {
	return pgx.NamedArgs{
		"title":       t.Title,
		"description": t.Description,
		"author_id":   t.AuthorID,
		"created_at":  t.CreatedAt,
		"priority":    string(t.Priority),
		"due_date":    t.DueDate,
		"state":       string(t.State),
	}
}

var _ tasksrepo.Storer = (*Store)(nil)

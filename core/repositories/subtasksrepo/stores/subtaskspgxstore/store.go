package subtaskspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/sdk/logger"
)

const columns = `id, title, created_at, is_done, task_id`

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

func (s *Store) List(ctx context.Context) ([]subtasksrepo.SubTask, error) {
	return queryAll(ctx, s.pool, `SELECT `+columns+` FROM subtasks ORDER BY id`, nil)
}

func (s *Store) ListByTask(ctx context.Context, taskID int64) ([]subtasksrepo.SubTask, error) {
	return queryAll(ctx, s.pool, `SELECT `+columns+` FROM subtasks WHERE task_id = @task_id ORDER BY id`,
		pgx.NamedArgs{"task_id": taskID})
}

func (s *Store) Get(ctx context.Context, id int64) (subtasksrepo.SubTask, error) {
	return queryOne(ctx, s.pool, `SELECT `+columns+` FROM subtasks WHERE id = @id`, pgx.NamedArgs{"id": id})
}

func (s *Store) Create(ctx context.Context, st subtasksrepo.SubTask) (subtasksrepo.SubTask, error) {
	query := `
		INSERT INTO subtasks (title, created_at, is_done, task_id)
		VALUES (@title, @created_at, @is_done, @task_id)
		RETURNING ` + columns

	return queryOne(ctx, s.pool, query, subTaskArgs(st))
}

func (s *Store) Update(ctx context.Context, id int64, patch subtasksrepo.UpdateSubTask) (subtasksrepo.SubTask, error) {
	var updated subtasksrepo.SubTask

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		st, err := queryOne(ctx, tx, `SELECT `+columns+` FROM subtasks WHERE id = @id FOR UPDATE`, pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}

		patch.Apply(&st)

		query := `
			UPDATE subtasks
			SET title = @title, created_at = @created_at, is_done = @is_done, task_id = @task_id
			WHERE id = @id
			RETURNING ` + columns

		args := subTaskArgs(st)
		args["id"] = id
		updated, err = queryOne(ctx, tx, query, args)
		return err
	})
	if err != nil {
		return subtasksrepo.SubTask{}, storeerr.Postgres(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM subtasks WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return storeerr.Postgres(err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryAll(ctx context.Context, q querier, query string, args pgx.NamedArgs) ([]subtasksrepo.SubTask, error) {
	var queryArgs []any
	if args != nil {
		queryArgs = append(queryArgs, args)
	}

	rows, err := q.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, storeerr.Postgres(err)
	}

	subtasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[subtasksrepo.SubTask])
	if err != nil {
		return nil, storeerr.Postgres(err)
	}
	return subtasks, nil
}

func queryOne(ctx context.Context, q querier, query string, args pgx.NamedArgs) (subtasksrepo.SubTask, error) {
	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return subtasksrepo.SubTask{}, storeerr.Postgres(err)
	}

	st, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[subtasksrepo.SubTask])
	if err != nil {
		return subtasksrepo.SubTask{}, storeerr.Postgres(err)
	}
	return st, nil
}

func subTaskArgs(st subtasksrepo.SubTask) pgx.NamedArgs {
	return pgx.NamedArgs{
		"title":      st.Title,
		"created_at": st.CreatedAt,
		"is_done":    st.IsDone,
		"task_id":    st.TaskID,
	}
}

var _ subtasksrepo.Storer = (*Store)(nil)

package authtokenspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/join/core/repositories/authtokensrepo"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/sdk/logger"
)

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

// GetOrCreate relies on the unique user_id constraint, so concurrent
// logins of one user converge on a single token.
func (s *Store) GetOrCreate(ctx context.Context, userID int64, key string) (authtokensrepo.Token, error) {
	var token authtokensrepo.Token

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO auth_tokens (key, user_id)
			VALUES (@key, @user_id)
			ON CONFLICT (user_id) DO NOTHING`

		if _, err := tx.Exec(ctx, insert, pgx.NamedArgs{"key": key, "user_id": userID}); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = @user_id`,
			pgx.NamedArgs{"user_id": userID})
		if err != nil {
			return err
		}
		token, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[authtokensrepo.Token])
		return err
	})
	if err != nil {
		return authtokensrepo.Token{}, storeerr.Postgres(err)
	}
	return token, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (authtokensrepo.Token, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, user_id, created_at FROM auth_tokens WHERE key = @key`,
		pgx.NamedArgs{"key": key})
	if err != nil {
		return authtokensrepo.Token{}, storeerr.Postgres(err)
	}
	defer rows.Close()

	token, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[authtokensrepo.Token])
	if err != nil {
		return authtokensrepo.Token{}, storeerr.Postgres(err)
	}
	return token, nil
}

var _ authtokensrepo.Storer = (*Store)(nil)

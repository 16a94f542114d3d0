// Package authtokenssqlitestore implements authtokensrepo.Storer on SQLite.
package authtokenssqlitestore

import (
	"context"
	"database/sql"

	"github.com/jrazmi/join/core/repositories/authtokensrepo"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
)

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

func (s *Store) GetOrCreate(ctx context.Context, userID int64, key string) (authtokensrepo.Token, error) {
	var token authtokensrepo.Token

	err := sqlitedb.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		insert := `INSERT INTO auth_tokens (key, user_id) VALUES (?, ?) ON CONFLICT (user_id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, insert, key, userID); err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, `SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = ?`, userID)
		return row.Scan(&token.Key, &token.UserID, sqlitedb.Timestamp(&token.CreatedAt))
	})
	if err != nil {
		return authtokensrepo.Token{}, storeerr.SQLite(err)
	}
	return token, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (authtokensrepo.Token, error) {
	var token authtokensrepo.Token

	row := s.db.QueryRowContext(ctx, `SELECT key, user_id, created_at FROM auth_tokens WHERE key = ?`, key)
	if err := row.Scan(&token.Key, &token.UserID, sqlitedb.Timestamp(&token.CreatedAt)); err != nil {
		return authtokensrepo.Token{}, storeerr.SQLite(err)
	}
	return token, nil
}

var _ authtokensrepo.Storer = (*Store)(nil)

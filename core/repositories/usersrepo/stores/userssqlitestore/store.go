// Package userssqlitestore implements usersrepo.Storer on SQLite.
package userssqlitestore

import (
	"context"
	"errors"
	"strings"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
)

const columns = `id, username, email, password_hash, first_name, last_name, is_staff, is_superuser, date_joined`

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

func scanUser(row scanner) (usersrepo.User, error) {
	var u usersrepo.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsStaff, &u.IsSuperuser, sqlitedb.Timestamp(&u.DateJoined))
	return u, err
}

func (s *Store) List(ctx context.Context) ([]usersrepo.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, storeerr.SQLite(err)
	}
	defer rows.Close()

	users := []usersrepo.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storeerr.SQLite(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeerr.SQLite(err)
	}
	return users, nil
}

func (s *Store) Get(ctx context.Context, id int64) (usersrepo.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return usersrepo.User{}, storeerr.SQLite(err)
	}
	return u, nil
}

func (s *Store) GetByUsername(ctx context.Context, username string) (usersrepo.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		return usersrepo.User{}, storeerr.SQLite(err)
	}
	return u, nil
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)`, username)
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`, email)
}

func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, is_staff, is_superuser)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + columns

	row := s.db.QueryRowContext(ctx, query, input.Username, input.Email, input.PasswordHash,
		input.FirstName, input.LastName, input.IsStaff, input.IsSuperuser)

	u, err := scanUser(row)
	if err != nil {
		err = storeerr.SQLite(err)
		if errors.Is(err, repositories.ErrDuplicate) {
			cols := sqlitedb.ConstraintColumns(err)
			switch {
			case strings.Contains(cols, "users.username"):
				return usersrepo.User{}, usersrepo.ErrUsernameTaken
			case strings.Contains(cols, "users.email"):
				return usersrepo.User{}, usersrepo.ErrEmailTaken
			}
		}
		return usersrepo.User{}, err
	}
	return u, nil
}

func (s *Store) exists(ctx context.Context, query, value string) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, query, value).Scan(&ok); err != nil {
		return false, storeerr.SQLite(err)
	}
	return ok, nil
}

var _ usersrepo.Storer = (*Store)(nil)

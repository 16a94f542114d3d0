package userspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/sdk/logger"
)

const columns = `id, username, email, password_hash, first_name, last_name, is_staff, is_superuser, date_joined`

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

func (s *Store) List(ctx context.Context) ([]usersrepo.User, error) {
	query := `SELECT ` + columns + ` FROM users ORDER BY id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, storeerr.Postgres(err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		return nil, storeerr.Postgres(err)
	}
	return users, nil
}

func (s *Store) Get(ctx context.Context, id int64) (usersrepo.User, error) {
	query := `SELECT ` + columns + ` FROM users WHERE id = @id`
	return s.one(ctx, query, pgx.NamedArgs{"id": id})
}

func (s *Store) GetByUsername(ctx context.Context, username string) (usersrepo.User, error) {
	query := `SELECT ` + columns + ` FROM users WHERE username = @username`
	return s.one(ctx, query, pgx.NamedArgs{"username": username})
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = @v)`, username)
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = @v)`, email)
}

func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, is_staff, is_superuser)
		VALUES (@username, @email, @password_hash, @first_name, @last_name, @is_staff, @is_superuser)
		RETURNING ` + columns

	args := pgx.NamedArgs{
		"username":      input.Username,
		"email":         input.Email,
		"password_hash": input.PasswordHash,
		"first_name":    input.FirstName,
		"last_name":     input.LastName,
		"is_staff":      input.IsStaff,
		"is_superuser":  input.IsSuperuser,
	}

	user, err := s.one(ctx, query, args)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			switch postgresdb.ConstraintName(err) {
			case "users_username_key":
				return usersrepo.User{}, usersrepo.ErrUsernameTaken
			case "users_email_key":
				return usersrepo.User{}, usersrepo.ErrEmailTaken
			}
		}
		return usersrepo.User{}, err
	}
	return user, nil
}

func (s *Store) one(ctx context.Context, query string, args pgx.NamedArgs) (usersrepo.User, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, storeerr.Postgres(err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		return usersrepo.User{}, storeerr.Postgres(err)
	}
	return user, nil
}

func (s *Store) exists(ctx context.Context, query, value string) (bool, error) {
	var ok bool
	if err := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"v": value}).Scan(&ok); err != nil {
		return false, storeerr.Postgres(err)
	}
	return ok, nil
}

var _ usersrepo.Storer = (*Store)(nil)

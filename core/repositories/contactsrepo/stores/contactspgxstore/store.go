package contactspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/sdk/logger"
)

const columns = `id, first_name, last_name, created_at`

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

func (s *Store) List(ctx context.Context) ([]contactsrepo.Contact, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+columns+` FROM contacts ORDER BY id`)
	if err != nil {
		return nil, storeerr.Postgres(err)
	}

	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[contactsrepo.Contact])
	if err != nil {
		return nil, storeerr.Postgres(err)
	}
	return contacts, nil
}

func (s *Store) Get(ctx context.Context, id int64) (contactsrepo.Contact, error) {
	return queryOne(ctx, s.pool, `SELECT `+columns+` FROM contacts WHERE id = @id`, pgx.NamedArgs{"id": id})
}

func (s *Store) Create(ctx context.Context, c contactsrepo.Contact) (contactsrepo.Contact, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, created_at)
		VALUES (@first_name, @last_name, @created_at)
		RETURNING ` + columns

	return queryOne(ctx, s.pool, query, contactArgs(c))
}

func (s *Store) Update(ctx context.Context, id int64, patch contactsrepo.UpdateContact) (contactsrepo.Contact, error) {
	var updated contactsrepo.Contact

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		c, err := queryOne(ctx, tx, `SELECT `+columns+` FROM contacts WHERE id = @id FOR UPDATE`, pgx.NamedArgs{"id": id})
		if err != nil {
			return err
		}

		patch.Apply(&c)

		query := `
			UPDATE contacts
			SET first_name = @first_name, last_name = @last_name, created_at = @created_at
			WHERE id = @id
			RETURNING ` + columns

		args := contactArgs(c)
		args["id"] = id
		updated, err = queryOne(ctx, tx, query, args)
		return err
	})
	if err != nil {
		return contactsrepo.Contact{}, storeerr.Postgres(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM contacts WHERE id = @id`, pgx.NamedArgs{"id": id})
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

func queryOne(ctx context.Context, q querier, query string, args pgx.NamedArgs) (contactsrepo.Contact, error) {
	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return contactsrepo.Contact{}, storeerr.Postgres(err)
	}

	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[contactsrepo.Contact])
	if err != nil {
		return contactsrepo.Contact{}, storeerr.Postgres(err)
	}
	return c, nil
}

func contactArgs(c contactsrepo.Contact) pgx.NamedArgs {
	return pgx.NamedArgs{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"created_at": c.CreatedAt,
	}
}

var _ contactsrepo.Storer = (*Store)(nil)

// Package contactssqlitestore implements contactsrepo.Storer on SQLite.
package contactssqlitestore

import (
	"context"
	"database/sql"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/core/repositories/storeerr"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
	"github.com/jrazmi/join/sdk/validation"
)

const columns = `id, first_name, last_name, created_at`

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

func scanContact(row scanner) (contactsrepo.Contact, error) {
	var c contactsrepo.Contact
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, sqlitedb.Date(&c.CreatedAt))
	return c, err
}

func (s *Store) List(ctx context.Context) ([]contactsrepo.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM contacts ORDER BY id`)
	if err != nil {
		return nil, storeerr.SQLite(err)
	}
	defer rows.Close()

	contacts := []contactsrepo.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, storeerr.SQLite(err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeerr.SQLite(err)
	}
	return contacts, nil
}

func (s *Store) Get(ctx context.Context, id int64) (contactsrepo.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM contacts WHERE id = ?`, id))
	if err != nil {
		return contactsrepo.Contact{}, storeerr.SQLite(err)
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, c contactsrepo.Contact) (contactsrepo.Contact, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, created_at)
		VALUES (?, ?, ?)
		RETURNING ` + columns

	created, err := scanContact(s.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, validation.FormatDate(c.CreatedAt)))
	if err != nil {
		return contactsrepo.Contact{}, storeerr.SQLite(err)
	}
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, patch contactsrepo.UpdateContact) (contactsrepo.Contact, error) {
	var updated contactsrepo.Contact

	err := sqlitedb.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		c, err := scanContact(tx.QueryRowContext(ctx, `SELECT `+columns+` FROM contacts WHERE id = ?`, id))
		if err != nil {
			return err
		}

		patch.Apply(&c)

		query := `
			UPDATE contacts
			SET first_name = ?, last_name = ?, created_at = ?
			WHERE id = ?
			RETURNING ` + columns

		updated, err = scanContact(tx.QueryRowContext(ctx, query, c.FirstName, c.LastName,
			validation.FormatDate(c.CreatedAt), id))
		return err
	})
	if err != nil {
		return contactsrepo.Contact{}, storeerr.SQLite(err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
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

var _ contactsrepo.Storer = (*Store)(nil)

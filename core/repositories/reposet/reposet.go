// Package reposet wires every repository to one storage engine.
package reposet

import (
	"context"

	"github.com/jrazmi/join/core/repositories/authtokensrepo"
	"github.com/jrazmi/join/core/repositories/authtokensrepo/stores/authtokenspgxstore"
	"github.com/jrazmi/join/core/repositories/authtokensrepo/stores/authtokenssqlitestore"
	"github.com/jrazmi/join/core/repositories/contactsrepo"
	"github.com/jrazmi/join/core/repositories/contactsrepo/stores/contactspgxstore"
	"github.com/jrazmi/join/core/repositories/contactsrepo/stores/contactssqlitestore"
	"github.com/jrazmi/join/core/repositories/subtasksrepo"
	"github.com/jrazmi/join/core/repositories/subtasksrepo/stores/subtaskspgxstore"
	"github.com/jrazmi/join/core/repositories/subtasksrepo/stores/subtaskssqlitestore"
	"github.com/jrazmi/join/core/repositories/tasksrepo"
	"github.com/jrazmi/join/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/join/core/repositories/tasksrepo/stores/taskssqlitestore"
	"github.com/jrazmi/join/core/repositories/usersrepo"
	"github.com/jrazmi/join/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/jrazmi/join/core/repositories/usersrepo/stores/userssqlitestore"
	"github.com/jrazmi/join/infrastructure/databases/postgresdb"
	"github.com/jrazmi/join/infrastructure/databases/sqlitedb"
	"github.com/jrazmi/join/sdk/logger"
)

// Set holds one repository per entity plus a readiness probe for the
// engine behind them.
type Set struct {
	Users    *usersrepo.Repository
	Tokens   *authtokensrepo.Repository
	Tasks    *tasksrepo.Repository
	SubTasks *subtasksrepo.Repository
	Contacts *contactsrepo.Repository

	StatusCheck func(ctx context.Context) error
}

// NewPostgres builds the set over a pgx pool.
func NewPostgres(log *logger.Logger, pool *postgresdb.Pool) Set {
	return Set{
		Users:    usersrepo.NewRepository(log, userspgxstore.NewStore(log, pool)),
		Tokens:   authtokensrepo.NewRepository(log, authtokenspgxstore.NewStore(log, pool)),
		Tasks:    tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pool)),
		SubTasks: subtasksrepo.NewRepository(log, subtaskspgxstore.NewStore(log, pool)),
		Contacts: contactsrepo.NewRepository(log, contactspgxstore.NewStore(log, pool)),
		StatusCheck: func(ctx context.Context) error {
			return postgresdb.StatusCheck(ctx, pool)
		},
	}
}

// NewSQLite builds the set over a SQLite database.
func NewSQLite(log *logger.Logger, db *sqlitedb.DB) Set {
	return Set{
		Users:    usersrepo.NewRepository(log, userssqlitestore.NewStore(log, db)),
		Tokens:   authtokensrepo.NewRepository(log, authtokenssqlitestore.NewStore(log, db)),
		Tasks:    tasksrepo.NewRepository(log, taskssqlitestore.NewStore(log, db)),
		SubTasks: subtasksrepo.NewRepository(log, subtaskssqlitestore.NewStore(log, db)),
		Contacts: contactsrepo.NewRepository(log, contactssqlitestore.NewStore(log, db)),
		StatusCheck: func(ctx context.Context) error {
			return sqlitedb.StatusCheck(ctx, db)
		},
	}
}

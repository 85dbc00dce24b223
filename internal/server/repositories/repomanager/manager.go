// Package repomanager opens the credential store connection pool and vends
// repositories bound to a connection or transaction.
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// RepositoryManager builds repositories for one SQL dialect.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// SQLitePrefix marks a DSN that should be opened with the SQLite driver; the
// remainder is passed to modernc.org/sqlite unchanged.
const SQLitePrefix = "sqlite:"

var ErrEmptyDSN = errors.New("empty database DSN")

// Store is an open, migrated connection pool together with the manager that
// matches its dialect.
type Store struct {
	DB      *sql.DB
	Manager RepositoryManager

	closePool func()
}

// Close releases every pooled connection.
func (s *Store) Close() error {
	err := s.DB.Close()
	if s.closePool != nil {
		s.closePool()
	}
	return err
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

type options struct {
	logger logging.Logger
}

// Option configures Open.
type Option func(*options)

// WithLogger sends migration progress to l. Without it goose output is
// discarded.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open connects to the database named by dsn with at most maxConns pooled
// connections and applies pending migrations.
func Open(ctx context.Context, dsn string, maxConns int, opts ...Option) (*Store, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		store *Store
		err   error
	)
	if path, ok := strings.CutPrefix(dsn, SQLitePrefix); ok {
		store, err = openSQLite(ctx, path, maxConns)
	} else {
		store, err = openPostgres(ctx, dsn, maxConns)
	}
	if err != nil {
		return nil, err
	}

	goose.SetLogger(newGooseLogger(ctx, o.logger))
	if err := store.Manager.RunMigrations(ctx, store.DB); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return store, nil
}

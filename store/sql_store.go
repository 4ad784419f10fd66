// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql" // Load MySQL Driver
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type SQLStore struct {
	db  *sql.DB
	dbx *sqlx.DB

	issue       IssueStore
	pullRequest PullRequestStore
}

func NewSQLStore(driverName, dataSource string) (*SQLStore, error) {
	db, err := sql.Open(driverName, dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	mlog.Info("pinging db")
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not ping db: %w", err)
	}

	if err = runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return newSQLStore(db, driverName), nil
}

func newSQLStore(db *sql.DB, driverName string) *SQLStore {
	dbx := sqlx.NewDb(db, driverName)
	// Columns are named after the struct fields.
	dbx.MapperFunc(func(s string) string { return s })

	sqlStore := &SQLStore{
		db:  db,
		dbx: dbx,
	}
	sqlStore.issue = NewSQLIssueStore(sqlStore)
	sqlStore.pullRequest = NewSQLPullRequestStore(sqlStore)

	return sqlStore
}

func (ss *SQLStore) Issue() IssueStore {
	return ss.issue
}

func (ss *SQLStore) PullRequest() PullRequestStore {
	return ss.pullRequest
}

func (ss *SQLStore) Mutex(key string) Locker {
	return NewMutex(key, ss.db)
}

func (ss *SQLStore) Close() error {
	mlog.Info("closing db")
	return ss.db.Close()
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	dbDriver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	srcDriver, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create source instance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "mysql", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to create db instance: %w", err)
	}
	return m, nil
}

func runMigrations(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	// A missing file means the database is ahead of this binary, which
	// happens after a rollback without down migrations. Keep running.
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to migrate DB: %w", err)
	}

	return nil
}

// MigrateTo moves the schema up or down to the given version.
func MigrateTo(driverName, dataSource string, version uint) error {
	if version == 0 {
		return fmt.Errorf("invalid migration version: %d", version)
	}

	db, err := sql.Open(driverName, dataSource)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}

	m, err := newMigrate(db)
	if err != nil {
		db.Close()
		return err
	}
	defer m.Close()

	err = m.Migrate(version)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	return nil
}

// Package sqlite implements the users repository on an embedded sqlite
// database.
package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/uservault/uservault/users"
)

type Repo struct {
	db *sql.DB
}

var _ users.Repository = (*Repo)(nil)

func New(path string) (*Repo, error) {
	db, err := initDatabase(path)
	if err != nil {
		return nil, err
	}

	return &Repo{db: db}, nil
}

func (repo *Repo) Close() error {
	return repo.db.Close()
}

type scannable interface {
	Scan(dest ...any) error
}

func rowToUser(row scannable) (users.User, error) {
	var u users.User

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		return users.User{}, err
	}

	return u, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error

	if !errors.As(err, &serr) {
		return false
	}

	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT,
		sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return false
	}
}

func initDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	_, err = db.Exec("PRAGMA busy_timeout = 5000")
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("PRAGMA synchronous=NORMAL")
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, createSchema(db)
}

func createSchema(db *sql.DB) error {
	// created_at is declared TEXT so the driver hands it back as the
	// stored "YYYY-MM-DD HH:MM:SS" string rather than a converted value.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)

	return err
}

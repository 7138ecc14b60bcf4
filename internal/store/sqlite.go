package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"phonebook/internal/directory"
)

const contactsSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	last_name TEXT NOT NULL,
	first_name TEXT NOT NULL,
	middle_name TEXT NOT NULL,
	organization TEXT NOT NULL,
	work_phone TEXT NOT NULL,
	personal_phone TEXT NOT NULL
);`

// SQLiteStore keeps the record list in a SQLite database. Record order
// follows the integer primary key, so positional IDs behave the same as
// with the JSON backend.
type SQLiteStore struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// NewSQLiteStore opens (creating if necessary) the database at path and
// ensures the schema exists. Pass ":memory:" for an in-memory database.
func NewSQLiteStore(path string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("set sqlite busy_timeout failed", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("set sqlite journal_mode=WAL failed", zap.Error(err))
	}

	if _, err := db.Exec(contactsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path, log: log}, nil
}

// Load reads all records in stored order. Rows failing validation are
// logged and the directory loads as empty, matching the JSON backend.
func (s *SQLiteStore) Load() ([]directory.Record, error) {
	rows, err := s.db.Query(`SELECT last_name, first_name, middle_name,
		organization, work_phone, personal_phone FROM contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var records []directory.Record
	for rows.Next() {
		var r directory.Record
		if err := rows.Scan(&r.LastName, &r.FirstName, &r.MiddleName,
			&r.Organization, &r.WorkPhone, &r.PersonalPhone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			s.log.Error("database contains an invalid record, starting empty",
				zap.String("path", s.path), zap.Int("index", i), zap.Error(err))
			return nil, nil
		}
	}
	return records, nil
}

// Save rewrites the contacts table with the given list in one
// transaction.
func (s *SQLiteStore) Save(records []directory.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO contacts (last_name, first_name,
		middle_name, organization, work_phone, personal_phone)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.LastName, r.FirstName, r.MiddleName,
			r.Organization, r.WorkPhone, r.PersonalPhone); err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

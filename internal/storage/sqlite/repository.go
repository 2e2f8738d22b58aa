// Package sqlite provides a SQLite-backed contact repository.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/cristianoliveira/contactbook/internal/domain"
	_ "modernc.org/sqlite"
)

// Repository stores contacts as JSON records keyed by their position in
// the fetched collection.
type Repository struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open opens (and initializes) the database at dsn.
func Open(dsn string) (*Repository, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite repository: dsn cannot be empty")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite repository: open db: %w", err)
	}
	// A shared-cache memory database disappears with its last connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	r := &Repository{db: db}
	if err := r.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) init() error {
	if _, err := r.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite repository: set busy timeout: %w", err)
	}
	if _, err := r.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite repository: create schema: %w", err)
	}
	return nil
}

// Replace swaps the stored collection in one transaction.
func (r *Repository) Replace(ctx context.Context, contacts []domain.Contact) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite repository: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllSQL); err != nil {
		return fmt.Errorf("sqlite repository: clear: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("sqlite repository: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range contacts {
		record, mErr := json.Marshal(c)
		if mErr != nil {
			err = fmt.Errorf("sqlite repository: encode contact %d: %w", c.ID, mErr)
			return err
		}
		if _, err = stmt.ExecContext(ctx, i, c.ID, c.Name, string(record)); err != nil {
			return fmt.Errorf("sqlite repository: insert contact %d: %w", c.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite repository: commit: %w", err)
	}
	return nil
}

// All returns the stored contacts in their original order.
func (r *Repository) All(ctx context.Context) ([]domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, ErrClosed
	}

	rows, err := r.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlite repository: list: %w", err)
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("sqlite repository: scan: %w", err)
		}
		var c domain.Contact
		if err := json.Unmarshal([]byte(record), &c); err != nil {
			return nil, fmt.Errorf("sqlite repository: decode record: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite repository: list: %w", err)
	}
	return contacts, nil
}

// Count returns the number of stored contacts.
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, ErrClosed
	}

	var n int
	if err := r.db.QueryRowContext(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite repository: count: %w", err)
	}
	return n, nil
}

// Close closes the database. Closing twice is a no-op.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}

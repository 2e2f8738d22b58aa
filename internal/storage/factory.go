package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/contactbook/internal/config"
	"github.com/cristianoliveira/contactbook/internal/storage/sqlite"
)

const (
	// BackendMemory selects the in-process slice store.
	BackendMemory = "memory"
	// BackendSQLite selects the SQLite store.
	BackendSQLite = "sqlite"

	// DefaultSQLiteDSN is a shared in-memory database that lives as long
	// as the process holds it open.
	DefaultSQLiteDSN = "file:contactbook?mode=memory&cache=shared"
)

// ErrUnknownBackend is returned for an unsupported storage_backend value.
var ErrUnknownBackend = errors.New("unknown storage backend")

var _ Repository = (*sqlite.Repository)(nil)

// NewFromConfig creates the repository selected by storage_backend.
func NewFromConfig() (Repository, error) {
	backend := config.Get("storage_backend", BackendMemory)
	dsn := config.Get("sqlite_dsn", DefaultSQLiteDSN)
	return NewForBackend(backend, dsn)
}

// NewForBackend creates a repository for the named backend. dsn is only
// used by the sqlite backend.
func NewForBackend(backend, dsn string) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendMemory:
		return NewMemoryRepository(), nil
	case BackendSQLite:
		if strings.TrimSpace(dsn) == "" {
			dsn = DefaultSQLiteDSN
		}
		repo, err := sqlite.Open(dsn)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
}

package storage

import (
	"context"
	"sync"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// MemoryRepository keeps the collection in a slice that is replaced, never
// mutated, so readers can share it safely.
type MemoryRepository struct {
	mu       sync.RWMutex
	contacts []domain.Contact
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{contacts: []domain.Contact{}}
}

// Replace implements Repository.
func (m *MemoryRepository) Replace(ctx context.Context, contacts []domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := domain.Clone(contacts)
	if next == nil {
		next = []domain.Contact{}
	}
	m.mu.Lock()
	m.contacts = next
	m.mu.Unlock()
	return nil
}

// All implements Repository.
func (m *MemoryRepository) All(ctx context.Context) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.Clone(m.contacts), nil
}

// Count implements Repository.
func (m *MemoryRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contacts), nil
}

// Close implements Repository.
func (m *MemoryRepository) Close() error {
	return nil
}

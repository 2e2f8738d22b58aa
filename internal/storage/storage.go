// Package storage holds the session's contact collection once it has been
// fetched. Backends are safe for concurrent use.
package storage

import (
	"context"

	"github.com/cristianoliveira/contactbook/internal/domain"
)

// Repository stores the contact collection in its original order.
type Repository interface {
	// Replace swaps the stored collection for contacts.
	Replace(ctx context.Context, contacts []domain.Contact) error
	// All returns a copy of the collection in insertion order.
	All(ctx context.Context) ([]domain.Contact, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

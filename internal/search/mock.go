package search

import (
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	mock.Mock
}

// Match provides a mock function with given fields: c, query.
func (m *MockProvider) Match(c domain.Contact, query string) bool {
	ret := m.Called(c, query)
	if rf, ok := ret.Get(0).(func(domain.Contact, string) bool); ok {
		return rf(c, query)
	}
	return ret.Bool(0)
}

// Name provides a mock function with no fields.
func (m *MockProvider) Name() string {
	ret := m.Called()
	return ret.String(0)
}

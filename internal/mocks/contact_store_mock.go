package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

// TestifyMockContactStore is a mock of store.ContactStore for use with testify/mock
type TestifyMockContactStore struct {
	mock.Mock
}

var _ store.ContactStore = (*TestifyMockContactStore)(nil)

// ListByUser is a mock implementation of store.ContactStore.ListByUser
func (m *TestifyMockContactStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Contact, error) {
	args := m.Called(ctx, userID)
	if contacts, ok := args.Get(0).([]*domain.Contact); ok {
		return contacts, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.ContactStore.Create
func (m *TestifyMockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// GetByID is a mock implementation of store.ContactStore.GetByID
func (m *TestifyMockContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if contact, ok := args.Get(0).(*domain.Contact); ok {
		return contact, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.ContactStore.Update
func (m *TestifyMockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// Delete is a mock implementation of store.ContactStore.Delete
func (m *TestifyMockContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/domain"
	"github.com/yasirshahid/contactManager-server/internal/store"
)

// MockContactStore implements store.ContactStore in memory for testing.
// Stored contacts are copied on the way in and out, so callers can mutate
// what they get back without touching the store.
type MockContactStore struct {
	// Function fields for customizable behavior
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)
	CreateFn     func(ctx context.Context, contact *domain.Contact) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	UpdateFn     func(ctx context.Context, contact *domain.Contact) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	Contacts map[uuid.UUID]*domain.Contact

	mu sync.Mutex
}

var _ store.ContactStore = (*MockContactStore)(nil)

// NewMockContactStore creates an empty in-memory contact store.
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[uuid.UUID]*domain.Contact),
	}
}

func copyContact(c *domain.Contact) *domain.Contact {
	cp := *c
	return &cp
}

// ListByUser implements the ContactStore interface
func (m *MockContactStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	contacts := make([]*domain.Contact, 0)
	for _, c := range m.Contacts {
		if c.UserID == userID {
			contacts = append(contacts, copyContact(c))
		}
	}

	sort.Slice(contacts, func(i, j int) bool {
		if !contacts[i].CreatedAt.Equal(contacts[j].CreatedAt) {
			return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
		}
		return contacts[i].ID.String() > contacts[j].ID.String()
	})

	return contacts, nil
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	if err := contact.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Contacts[contact.ID]; exists {
		return store.ErrDuplicate
	}
	m.Contacts[contact.ID] = copyContact(contact)
	return nil
}

// GetByID implements the ContactStore interface
func (m *MockContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, exists := m.Contacts[id]
	if !exists {
		return nil, store.ErrContactNotFound
	}
	return copyContact(c), nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	if err := contact.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Contacts[contact.ID]
	if !exists {
		return store.ErrContactNotFound
	}

	updated := copyContact(existing)
	updated.Name = contact.Name
	updated.Email = contact.Email
	updated.Phone = contact.Phone
	updated.Relationship = contact.Relationship
	updated.UpdatedAt = contact.UpdatedAt
	m.Contacts[contact.ID] = updated
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Contacts[id]; !exists {
		return store.ErrContactNotFound
	}
	delete(m.Contacts, id)
	return nil
}

package crm

import (
	"context"
	"fmt"
	"sync"
)

// MockAPI is an in-memory API for tests. It records writes and serves reads
// from the Contacts map.
type MockAPI struct {
	mu sync.Mutex

	Contacts map[string]*Contact
	Listed   []Contact

	SentEmails []EmailMessage
	Tagged     map[string][]string
	Created    []ContactInput

	GetErr  error
	SendErr error
}

func NewMockAPI() *MockAPI {
	return &MockAPI{
		Contacts: make(map[string]*Contact),
		Tagged:   make(map[string][]string),
	}
}

func (m *MockAPI) GetContact(_ context.Context, id string) (*Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	c, ok := m.Contacts[id]
	if !ok {
		return nil, fmt.Errorf("contact %s not found", id)
	}
	return c, nil
}

func (m *MockAPI) ListContacts(_ context.Context, _ string, limit int) ([]Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > 0 && len(m.Listed) > limit {
		return m.Listed[:limit], nil
	}
	return m.Listed, nil
}

func (m *MockAPI) CreateContact(_ context.Context, in ContactInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = append(m.Created, in)
	return nil
}

func (m *MockAPI) AddTags(_ context.Context, contactID string, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tagged[contactID] = append(m.Tagged[contactID], tags...)
	return nil
}

func (m *MockAPI) SendEmail(_ context.Context, msg EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.SentEmails = append(m.SentEmails, msg)
	return nil
}

// EmailCount returns the number of emails sent through the mock.
func (m *MockAPI) EmailCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SentEmails)
}

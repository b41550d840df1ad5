package user

import (
	"context"
	"sync"
	"time"
)

// memStore is an in-memory Store for tests.
// getErr and createErr, when set, are returned instead of touching the map.
type memStore struct {
	mu        sync.Mutex
	byEmail   map[string]*User
	nextID    int64
	getErr    error
	createErr error

	gets    int
	creates int
}

func newMemStore() *memStore {
	return &memStore{byEmail: make(map[string]*User)}
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gets++
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.creates++
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, ok := m.byEmail[req.Email]; ok {
		return nil, ErrEmailAlreadyInUse
	}

	m.nextID++
	u := &User{
		ID:        m.nextID,
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	m.byEmail[req.Email] = u

	cp := *u
	return &cp, nil
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-memory Store used in tests. It enforces the same email
// uniqueness guarantee as the database constraint, under a mutex, so the
// concurrent-signup semantics can be exercised without Postgres.
type Memory struct {
	mu              sync.Mutex
	users           map[string]*User // by id
	transformations []Transformation
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{users: make(map[string]*User)}
}

func (m *Memory) CreateUser(_ context.Context, email, passwordHash string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now()
	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[user.ID] = user

	clone := *user
	return &clone, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByID(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *Memory) SetLLMKey(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.LLMAPIKey = key
	u.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) AddTransformation(_ context.Context, t *Transformation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	m.transformations = append(m.transformations, *t)
	return nil
}

func (m *Memory) TransformationStats(_ context.Context, userID string) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{}
	for _, t := range m.transformations {
		if t.UserID == userID {
			stats.Total++
			stats.Recent = append(stats.Recent, t)
		}
	}

	sort.Slice(stats.Recent, func(i, j int) bool {
		return stats.Recent[i].CreatedAt.After(stats.Recent[j].CreatedAt)
	})
	if len(stats.Recent) > 5 {
		stats.Recent = stats.Recent[:5]
	}
	return stats, nil
}

// DeleteUser removes a user row. Test hook for the deleted-subject gateway
// scenario; the HTTP surface has no delete operation.
func (m *Memory) DeleteUser(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

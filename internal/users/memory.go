package users

import (
	"context"
	"sync"
	"time"

	"github.com/learning-notifier/learning-notifier/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is a simple in-memory repository used in unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.User)}
}

func (m *MemoryRepository) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.store[u.ID.Hex()] = &cp
	return u, nil
}

func (m *MemoryRepository) FindAll(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.store))
	for _, u := range m.store {
		out = append(out, *u)
	}
	return out, nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.store[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) UpdateByID(ctx context.Context, id string, upd Update) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Type != nil {
		u.Type = *upd.Type
	}
	if upd.IsAdmin != nil {
		u.IsAdmin = *upd.IsAdmin
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (m *MemoryRepository) DeleteByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	delete(m.store, id)
	return u, nil
}

// Count reports the number of stored users. Test helper.
func (m *MemoryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

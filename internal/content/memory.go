package content

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/learning-notifier/learning-notifier/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is a simple in-memory repository used in unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*models.Content
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*models.Content)}
}

func (m *MemoryRepository) Insert(ctx context.Context, c *models.Content) (*models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = primitive.NewObjectID()
	cp := *c
	m.store[c.ID.Hex()] = &cp
	return c, nil
}

func (m *MemoryRepository) FindRecentUsed(ctx context.Context, limit int) ([]models.Content, error) {
	return m.findUsed(func(*models.Content) bool { return true }, limit)
}

func (m *MemoryRepository) FindUsedByTopicArea(ctx context.Context, topicArea string, limit int) ([]models.Content, error) {
	return m.findUsed(func(c *models.Content) bool { return c.TopicArea == topicArea }, limit)
}

func (m *MemoryRepository) findUsed(match func(*models.Content) bool, limit int) ([]models.Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Content, 0)
	for _, c := range m.store {
		if c.IsUsed && match(c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepository) MarkUsed(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.store[id]
	if !ok {
		return errors.New("content not found")
	}
	c.IsUsed = true
	return nil
}

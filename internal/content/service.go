package content

import (
	"context"
	"time"

	"github.com/learning-notifier/learning-notifier/internal/models"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
)

const (
	defaultRecentLimit    = 5
	defaultTopicAreaLimit = 3
)

// Service owns the lifecycle of generated content records.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save persists a freshly generated topic with isUsed=false.
func (s *Service) Save(ctx context.Context, title, body, topicArea string) (*models.Content, error) {
	c := &models.Content{
		Title:       title,
		Content:     body,
		TopicArea:   topicArea,
		GeneratedAt: time.Now().UTC(),
		IsUsed:      false,
	}
	saved, err := s.repo.Insert(ctx, c)
	if err != nil {
		logger.Errorf("error saving content: %v", err)
		return nil, err
	}
	logger.Infof("content saved: %s", title)
	return saved, nil
}

// Recent returns up to limit used records, newest first. Storage failures
// degrade to an empty history; callers must tolerate an empty list.
func (s *Service) Recent(ctx context.Context, limit int) []models.Content {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	out, err := s.repo.FindRecentUsed(ctx, limit)
	if err != nil {
		logger.Errorf("error fetching recent content: %v", err)
		return []models.Content{}
	}
	return out
}

// ByTopicArea is Recent scoped to one topic area, with the same soft-fail
// contract.
func (s *Service) ByTopicArea(ctx context.Context, topicArea string, limit int) []models.Content {
	if limit <= 0 {
		limit = defaultTopicAreaLimit
	}
	out, err := s.repo.FindUsedByTopicArea(ctx, topicArea, limit)
	if err != nil {
		logger.Errorf("error fetching content by topic area: %v", err)
		return []models.Content{}
	}
	return out
}

// MarkUsed flags a record as used. Fire-and-forget: failures are logged and
// swallowed.
func (s *Service) MarkUsed(ctx context.Context, id string) {
	if err := s.repo.MarkUsed(ctx, id); err != nil {
		logger.Errorf("error marking content as used: %v", err)
		return
	}
	logger.Infof("content marked as used: %s", id)
}

package content

import (
	"context"

	"github.com/learning-notifier/learning-notifier/internal/models"
)

// Repository defines persistence operations for generated content. The
// recency queries only consider records already marked used.
type Repository interface {
	Insert(ctx context.Context, c *models.Content) (*models.Content, error)
	FindRecentUsed(ctx context.Context, limit int) ([]models.Content, error)
	FindUsedByTopicArea(ctx context.Context, topicArea string, limit int) ([]models.Content, error)
	MarkUsed(ctx context.Context, id string) error
}

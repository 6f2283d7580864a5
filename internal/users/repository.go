package users

import (
	"context"

	"github.com/learning-notifier/learning-notifier/internal/models"
)

// Update carries a partial user update; nil fields are left untouched.
type Update struct {
	Name    *string
	Email   *string
	Type    *string
	IsAdmin *bool
}

// Repository defines persistence operations for users. Lookups return
// (nil, nil) when no document matches.
type Repository interface {
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByID(ctx context.Context, id string, upd Update) (*models.User, error)
	DeleteByID(ctx context.Context, id string) (*models.User, error)
}

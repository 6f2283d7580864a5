package users

import (
	"context"
	"errors"
	"strings"

	"github.com/learning-notifier/learning-notifier/internal/auth"
	"github.com/learning-notifier/learning-notifier/internal/models"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("user with this email already exists")
	ErrInvalidEmail      = errors.New("valid email address is required")
	ErrEmptyName         = errors.New("name is required")
	ErrAdminCodeRequired = errors.New("admin code is required for admin registration")
	ErrInvalidID         = errors.New("valid user ID is required")
)

const defaultUserType = "developer"

// RegisterInput is the payload for creating a user.
type RegisterInput struct {
	Name      string
	Email     string
	Type      string
	AdminCode string
	IsAdmin   bool
}

// UpdateInput is a partial update; empty strings mean "not supplied".
type UpdateInput struct {
	Name      string
	Email     string
	Type      string
	AdminCode string
	IsAdmin   *bool
}

// Service encapsulates user directory business logic. All validation runs
// before any write, so a failed mutation leaves the store unchanged.
type Service struct {
	repo  Repository
	admin *auth.Validator
}

func NewService(repo Repository, admin *auth.Validator) *Service {
	return &Service{repo: repo, admin: admin}
}

// Register creates a user with a normalized (trimmed, lower-cased) email.
// Registration as admin requires a valid admin code.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if !strings.Contains(in.Email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrEmptyName
	}
	if in.IsAdmin {
		if in.AdminCode == "" {
			return nil, ErrAdminCodeRequired
		}
		if err := s.admin.Validate(in.AdminCode); err != nil {
			return nil, err
		}
	}

	logger.Infof("attempting to register user: %s", in.Email)

	if existing := s.FindByEmail(ctx, in.Email); existing != nil {
		logger.Warnf("registration failed - user already exists: %s", in.Email)
		return nil, ErrDuplicateEmail
	}

	userType := strings.TrimSpace(in.Type)
	if userType == "" {
		userType = defaultUserType
	}
	u := &models.User{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Type:    userType,
		IsAdmin: in.IsAdmin,
	}
	saved, err := s.repo.Insert(ctx, u)
	if err != nil {
		return nil, err
	}
	logger.Infof("user registered successfully: %s", saved.Email)
	return saved, nil
}

// List returns all users. The admin code is validated only when supplied.
func (s *Service) List(ctx context.Context, adminCode string) ([]models.User, error) {
	if adminCode != "" {
		if err := s.admin.Validate(adminCode); err != nil {
			return nil, err
		}
	}
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infof("found %d users", len(users))
	return users, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		logger.Warnf("user not found with ID: %s", id)
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}
	if in.AdminCode != "" {
		if err := s.admin.Validate(in.AdminCode); err != nil {
			return nil, err
		}
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return nil, ErrInvalidEmail
	}
	if in.Name != "" && strings.TrimSpace(in.Name) == "" {
		return nil, ErrEmptyName
	}

	var upd Update
	if in.Name != "" {
		name := strings.TrimSpace(in.Name)
		upd.Name = &name
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		upd.Email = &email
	}
	if in.Type != "" {
		t := strings.TrimSpace(in.Type)
		upd.Type = &t
	}
	upd.IsAdmin = in.IsAdmin

	u, err := s.repo.UpdateByID(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if u == nil {
		logger.Warnf("user not found for update with ID: %s", id)
		return nil, ErrNotFound
	}
	logger.Infof("user updated successfully: %s", id)
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id, adminCode string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	if adminCode != "" {
		if err := s.admin.Validate(adminCode); err != nil {
			return err
		}
	}
	u, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		logger.Warnf("user not found for deletion with ID: %s", id)
		return ErrNotFound
	}
	logger.Infof("user deleted successfully: %s", id)
	return nil
}

// FindByEmail resolves a user by case-insensitive, trimmed email. It returns
// nil on malformed input, no match, or any storage error; it never fails.
func (s *Service) FindByEmail(ctx context.Context, email string) *models.User {
	if !strings.Contains(email, "@") {
		return nil
	}
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		logger.Errorf("error finding user by email %s: %v", email, err)
		return nil
	}
	return u
}

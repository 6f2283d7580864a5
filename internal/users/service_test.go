package users

import (
	"context"
	"testing"

	"github.com/learning-notifier/learning-notifier/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo, auth.NewValidator("ADMIN123")), repo
}

func TestRegisterNormalizesAndDefaults(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "  Alice  ", Email: " Alice@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "developer", u.Type)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestRegisterValidation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Bob", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register(ctx, RegisterInput{Name: "   ", Email: "bob@example.com"})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Register(ctx, RegisterInput{Name: "Bob", Email: "bob@example.com", IsAdmin: true})
	assert.ErrorIs(t, err, ErrAdminCodeRequired)

	_, err = svc.Register(ctx, RegisterInput{Name: "Bob", Email: "bob@example.com", IsAdmin: true, AdminCode: "nope"})
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	// no partial writes on any validation failure
	assert.Equal(t, 0, repo.Count())
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: " A@B.COM "})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, repo.Count())
}

func TestRegisterAdminWithValidCode(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{
		Name: "Root", Email: "root@example.com", IsAdmin: true, AdminCode: "ADMIN123",
	})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
}

func TestFindByEmailInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.com"})
	require.NoError(t, err)

	assert.NotNil(t, svc.FindByEmail(ctx, " A@B.com "))
	assert.NotNil(t, svc.FindByEmail(ctx, "a@b.com"))
	assert.Nil(t, svc.FindByEmail(ctx, "missing@b.com"))
	// malformed input never fails, just resolves to nil
	assert.Nil(t, svc.FindByEmail(ctx, "garbage"))
}

func TestListWithAdminCode(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.com"})
	require.NoError(t, err)

	// no code supplied: allowed (gating is optional by design)
	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// valid code: allowed
	all, err = svc.List(ctx, "ADMIN123")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// wrong code: rejected
	_, err = svc.List(ctx, "bogus")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestGetUpdateDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.com"})
	require.NoError(t, err)
	id := u.ID.Hex()

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)

	_, err = svc.Get(ctx, "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidID)

	updated, err := svc.Update(ctx, id, UpdateInput{Name: "  Renamed ", Email: "NEW@B.com"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "new@b.com", updated.Email)

	_, err = svc.Update(ctx, id, UpdateInput{Email: "broken"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Update(ctx, "ffffffffffffffffffffffff", UpdateInput{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, id, UpdateInput{Name: "X", AdminCode: "bogus"})
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	assert.ErrorIs(t, svc.Delete(ctx, id, "bogus"), auth.ErrUnauthorized)
	assert.Equal(t, 1, repo.Count())

	require.NoError(t, svc.Delete(ctx, id, "ADMIN123"))
	assert.Equal(t, 0, repo.Count())
	assert.ErrorIs(t, svc.Delete(ctx, id, ""), ErrNotFound)
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adubrov/boiler-parts/internal/adapter/storage"
	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/core/service"
)

type fakePasswordManager struct{}

func (fakePasswordManager) Hash(pwd string) (string, error) { return pwd + "-hashed", nil }
func (fakePasswordManager) Check(hashed, pwd string) bool   { return hashed == pwd+"-hashed" }

func setupUsers(t *testing.T) (*service.UserService, *storage.MemoryUserRepository) {
	t.Helper()
	repo := storage.NewMemoryUserRepository()
	return service.NewUserService(repo, fakePasswordManager{}), repo
}

func TestSignUp(t *testing.T) {
	svc, repo := setupUsers(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.SignUp(ctx, "john", "john@gmail.com", "john123")
		require.NoError(t, err)
		assert.Equal(t, "john", user.Username)
		assert.Equal(t, "john123-hashed", user.HashedPassword)
		assert.NotZero(t, user.ID)

		saved, err := repo.FindByUsername(ctx, "john")
		require.NoError(t, err)
		assert.Equal(t, user.ID, saved.ID)
	})

	t.Run("username taken", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "john", "other@gmail.com", "pass")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := setupUsers(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "john", "john@gmail.com", "john123")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, "john", "john123")
		require.NoError(t, err)
		assert.Equal(t, "john", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "john", "nope")
		assert.ErrorIs(t, err, domain.ErrWrongCredentials)
	})

	t.Run("unknown user looks the same as wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost", "john123")
		assert.ErrorIs(t, err, domain.ErrWrongCredentials)
	})
}

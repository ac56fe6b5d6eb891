package port

import (
	"context"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

type UserRepository interface {
	// Create persists a new user and assigns its id.
	Create(ctx context.Context, user *domain.User) error

	// Find retrieves a user by id, domain.ErrUserNotFound when absent.
	Find(ctx context.Context, id int64) (*domain.User, error)

	// FindByUsername retrieves a user by username, domain.ErrUserNotFound
	// when absent.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PasswordManager hides the hashing scheme from the user service.
type PasswordManager interface {
	Hash(plainTextPassword string) (string, error)
	Check(hashedPassword, plainTextPassword string) bool
}

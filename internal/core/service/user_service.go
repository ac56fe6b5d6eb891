package service

import (
	"context"
	"errors"
	"time"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

type UserService struct {
	users     port.UserRepository
	passwords port.PasswordManager
}

func NewUserService(users port.UserRepository, passwords port.PasswordManager) *UserService {
	return &UserService{users: users, passwords: passwords}
}

// SignUp registers a new user, domain.ErrUsernameTaken when the username
// already exists.
func (s *UserService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and returns the user. An unknown username and
// a wrong password are indistinguishable to the caller, both fail with
// domain.ErrWrongCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrWrongCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.passwords.Check(user.HashedPassword, password) {
		return nil, domain.ErrWrongCredentials
	}

	return user, nil
}

// FindByID retrieves a user by id.
func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.Find(ctx, id)
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrWrongCredentials = errors.New("wrong username or password")
)

type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"password" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// Session is the authenticated identity attached to a request after the
// session cookie has been resolved.
type Session struct {
	ID       string `json:"id"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

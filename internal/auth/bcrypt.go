package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordManager implements port.PasswordManager with bcrypt.
type BcryptPasswordManager struct {
	cost int
}

func NewBcryptPasswordManager(cost int) *BcryptPasswordManager {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordManager{cost: cost}
}

func (m *BcryptPasswordManager) Hash(plainTextPassword string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), m.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func (m *BcryptPasswordManager) Check(hashedPassword, plainTextPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainTextPassword)) == nil
}

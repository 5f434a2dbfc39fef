// --- users/service.go ---
package users

import (
	"errors"
	"fmt"

	"github.com/emmanuel20-pro/Actividad-3/models"
	"github.com/emmanuel20-pro/Actividad-3/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is returned when registering an identity that is
	// already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for both an unknown identity
	// and a wrong password, so callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service manages credential records in the user collection.
type Service struct {
	store *storage.Collection[models.User]
}

func NewService(store *storage.Collection[models.User]) *Service {
	return &Service{store: store}
}

// Register hashes the password and appends a new user record. Identities
// are unique and case-sensitive.
func (s *Service) Register(usuario, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.store.Update(func(records []models.User) ([]models.User, error) {
		for _, u := range records {
			if u.Usuario == usuario {
				return nil, ErrUserExists
			}
		}
		return append(records, models.User{Usuario: usuario, Password: string(hash)}), nil
	})
}

// Verify checks a login attempt. It never compares raw strings; the
// stored hash is checked through bcrypt.
func (s *Service) Verify(usuario, password string) error {
	for _, u := range s.store.Load() {
		if u.Usuario == usuario {
			if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
				return ErrInvalidCredentials
			}
			return nil
		}
	}
	return ErrInvalidCredentials
}

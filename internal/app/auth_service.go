package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"caretrack/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials indicates that the provided username or password was
// incorrect.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks login credentials against the user table.
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login authenticates a credential pair. The user table has no key to select
// on, so every row is scanned; with duplicate usernames the first matching
// pair wins. Returns ErrInvalidCredentials when nothing matches.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}
		if matchPassword(users[i].Password, password) {
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

// matchPassword compares a supplied password against the stored text.
// Current rows hold bcrypt hashes. Rows inherited from the legacy database
// hold the password in plain text; those get a constant-time comparison.
// Rehashing legacy rows is out of scope.
func matchPassword(stored, supplied string) bool {
	if looksLikeBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// looksLikeBcrypt reports whether stored carries the bcrypt text shape:
// "$2a$", "$2b$" or "$2y$", then the two-digit cost and its separator.
// Checking the full shape keeps legacy plain-text passwords that merely
// start with "$2" on the comparison path they can actually pass.
func looksLikeBcrypt(stored string) bool {
	if len(stored) < 7 {
		return false
	}
	switch {
	case strings.HasPrefix(stored, "$2a$"),
		strings.HasPrefix(stored, "$2b$"),
		strings.HasPrefix(stored, "$2y$"):
	default:
		return false
	}
	return stored[4] >= '0' && stored[4] <= '9' &&
		stored[5] >= '0' && stored[5] <= '9' &&
		stored[6] == '$'
}

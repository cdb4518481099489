package domain

import "context"

// User is a login credential pair. Password holds whatever the store keeps:
// a bcrypt hash for rows written by current tooling, plain text for rows
// inherited from the legacy database. The user table has no primary key,
// so users carry no identity.
type User struct {
	Username string
	Password string
}

// UserRepository is the port for credential persistence. The keyless table
// supports only insertion and full scans.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	All(ctx context.Context) ([]User, error)
}

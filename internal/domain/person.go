// Package domain contains the core entities and repository ports.
package domain

import "fmt"

// ID is a store-assigned entity identity. The zero value means the entity
// has not been persisted yet; the store fills it in on create.
type ID struct {
	n  int64
	ok bool
}

// NewID returns an assigned identity.
func NewID(n int64) ID {
	return ID{n: n, ok: true}
}

// Assigned reports whether the store has assigned this identity.
func (id ID) Assigned() bool {
	return id.ok
}

// Int64 returns the numeric identity, 0 if unassigned.
func (id ID) Int64() int64 {
	return id.n
}

// Equal reports whether both identities are assigned and refer to the same row.
func (id ID) Equal(other ID) bool {
	return id.ok && other.ok && id.n == other.n
}

func (id ID) String() string {
	if !id.ok {
		return "unassigned"
	}
	return fmt.Sprintf("%d", id.n)
}

// Person carries the name fields shared by patients and caregivers.
// It is always embedded, never persisted on its own.
type Person struct {
	ID        ID
	FirstName string
	Surname   string
}

// DisplayName formats a person the way selection lists show them.
func (p Person) DisplayName() string {
	return fmt.Sprintf("%s, %s", p.Surname, p.FirstName)
}

package domain

import "context"

// Caregiver is a member of the care staff.
type Caregiver struct {
	Person
	TelNumber string
}

// CaregiverRepository is the port for caregiver persistence.
type CaregiverRepository interface {
	Create(ctx context.Context, c *Caregiver) error
	ByID(ctx context.Context, id int64) (*Caregiver, error)
	All(ctx context.Context) ([]Caregiver, error)
	Update(ctx context.Context, c Caregiver) error
	Delete(ctx context.Context, id int64) error
}

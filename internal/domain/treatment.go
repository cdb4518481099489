package domain

import (
	"context"
	"time"
)

// Treatment is a single care session given to a patient by a caregiver.
type Treatment struct {
	ID          ID
	PatientID   int64
	Date        time.Time
	Begin       TimeOfDay
	End         TimeOfDay
	Description string
	Remark      string
	CaregiverID int64
}

// TreatmentColumn names a treatment table column that single-predicate
// lookups may filter on. The store exposes no compound query; callers
// needing both predicates intersect two single-column lookups.
type TreatmentColumn string

const (
	// ColPatient scopes a lookup to one patient.
	ColPatient TreatmentColumn = "pid"
	// ColCaregiver scopes a lookup to one caregiver.
	ColCaregiver TreatmentColumn = "cgid"
)

// TreatmentRepository is the port for treatment persistence.
type TreatmentRepository interface {
	Create(ctx context.Context, t *Treatment) error
	ByID(ctx context.Context, id int64) (*Treatment, error)
	All(ctx context.Context) ([]Treatment, error)
	Update(ctx context.Context, t Treatment) error
	Delete(ctx context.Context, id int64) error

	// ByColumn returns all treatments whose col equals id, in store order.
	ByColumn(ctx context.Context, col TreatmentColumn, id int64) ([]Treatment, error)
}

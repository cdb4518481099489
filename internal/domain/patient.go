package domain

import (
	"context"
	"time"
)

// Patient is a resident receiving care.
type Patient struct {
	Person
	DateOfBirth time.Time
	CareLevel   string
	RoomNumber  string

	// Treatments holds back-references to treatments loaded for this
	// patient. It is not persisted with the patient row and deleting the
	// patient does not touch it; the store handles referential deletion.
	Treatments []Treatment
}

// AddTreatment appends a treatment back-reference unless one with the same
// identity is already present.
func (p *Patient) AddTreatment(t Treatment) bool {
	for _, existing := range p.Treatments {
		if existing.ID.Equal(t.ID) {
			return false
		}
	}
	p.Treatments = append(p.Treatments, t)
	return true
}

// PatientRepository is the port for patient persistence.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	ByID(ctx context.Context, id int64) (*Patient, error)
	All(ctx context.Context) ([]Patient, error)
	Update(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id int64) error
}

// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"

	"caretrack/internal/domain"
)

var (
	// ErrEndNotAfterBegin indicates a treatment whose end time does not lie
	// strictly after its begin time.
	ErrEndNotAfterBegin = errors.New("end time must be after begin time")
	// ErrBlankDescription indicates a treatment without a description.
	ErrBlankDescription = errors.New("description must not be blank")
)

// TreatmentService encapsulates treatment entry and the compound filter.
type TreatmentService struct {
	repo domain.TreatmentRepository
}

// NewTreatmentService creates a TreatmentService backed by the given repository.
func NewTreatmentService(repo domain.TreatmentRepository) *TreatmentService {
	return &TreatmentService{repo: repo}
}

// Axis is one side of the treatment filter: either the wildcard matching
// every row, or one concrete person identity.
type Axis struct {
	all bool
	id  int64
}

// AxisAll returns the wildcard axis.
func AxisAll() Axis {
	return Axis{all: true}
}

// AxisID returns an axis scoped to one person identity.
func AxisID(id int64) Axis {
	return Axis{id: id}
}

// Record validates and stores a new treatment.
func (s *TreatmentService) Record(ctx context.Context, t *domain.Treatment) error {
	if err := validateTreatment(t); err != nil {
		return err
	}
	return s.repo.Create(ctx, t)
}

// Amend validates and persists a full overwrite of an existing treatment.
func (s *TreatmentService) Amend(ctx context.Context, t domain.Treatment) error {
	if err := validateTreatment(&t); err != nil {
		return err
	}
	return s.repo.Update(ctx, t)
}

// Remove deletes a treatment by identity.
func (s *TreatmentService) Remove(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List returns every treatment in store order.
func (s *TreatmentService) List(ctx context.Context) ([]domain.Treatment, error) {
	return s.repo.All(ctx)
}

// ForPatient returns the treatments of one patient.
func (s *TreatmentService) ForPatient(ctx context.Context, pid int64) ([]domain.Treatment, error) {
	return s.repo.ByColumn(ctx, domain.ColPatient, pid)
}

// ForCaregiver returns the treatments given by one caregiver.
func (s *TreatmentService) ForCaregiver(ctx context.Context, cgid int64) ([]domain.Treatment, error) {
	return s.repo.ByColumn(ctx, domain.ColCaregiver, cgid)
}

// Filter answers "treatments for patient P and caregiver C". The store only
// exposes single-predicate lookups, so each axis fetches its own candidate
// set and the result is their intersection keyed by treatment identity.
// Order follows the patient-axis candidate set.
func (s *TreatmentService) Filter(ctx context.Context, patient, caregiver Axis) ([]domain.Treatment, error) {
	// Both wildcards would intersect the full scan with itself.
	if patient.all && caregiver.all {
		return s.repo.All(ctx)
	}

	patientSide, err := s.candidates(ctx, patient, domain.ColPatient)
	if err != nil {
		return nil, err
	}
	caregiverSide, err := s.candidates(ctx, caregiver, domain.ColCaregiver)
	if err != nil {
		return nil, err
	}

	inCaregiverSide := make(map[int64]struct{}, len(caregiverSide))
	for _, t := range caregiverSide {
		inCaregiverSide[t.ID.Int64()] = struct{}{}
	}

	var out []domain.Treatment
	for _, t := range patientSide {
		if _, ok := inCaregiverSide[t.ID.Int64()]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TreatmentService) candidates(ctx context.Context, axis Axis, col domain.TreatmentColumn) ([]domain.Treatment, error) {
	if axis.all {
		return s.repo.All(ctx)
	}
	return s.repo.ByColumn(ctx, col, axis.id)
}

func validateTreatment(t *domain.Treatment) error {
	if !t.End.After(t.Begin) {
		return ErrEndNotAfterBegin
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrBlankDescription
	}
	return nil
}

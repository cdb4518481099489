package app

import (
	"context"
	"errors"

	"caretrack/internal/domain"
)

// Wildcard is the selection string matching every person on a filter axis.
const Wildcard = "all"

// ErrUnknownSelection indicates a display name that matches nobody in the
// loaded list.
var ErrUnknownSelection = errors.New("selection matches no person")

// FindPatient returns the first patient in list whose display name matches.
// Duplicate display names resolve to the earliest entry; nothing
// disambiguates them.
func FindPatient(list []domain.Patient, displayName string) *domain.Patient {
	for i := range list {
		if list[i].DisplayName() == displayName {
			return &list[i]
		}
	}
	return nil
}

// FindCaregiver returns the first caregiver in list whose display name
// matches. Same first-match rule as FindPatient.
func FindCaregiver(list []domain.Caregiver, displayName string) *domain.Caregiver {
	for i := range list {
		if list[i].DisplayName() == displayName {
			return &list[i]
		}
	}
	return nil
}

// RosterService loads person lists and maps display-name selections onto
// filter axes.
type RosterService struct {
	patients   domain.PatientRepository
	caregivers domain.CaregiverRepository
}

// NewRosterService creates a RosterService backed by the given repositories.
func NewRosterService(patients domain.PatientRepository, caregivers domain.CaregiverRepository) *RosterService {
	return &RosterService{patients: patients, caregivers: caregivers}
}

// Patients returns every patient for selection lists.
func (s *RosterService) Patients(ctx context.Context) ([]domain.Patient, error) {
	return s.patients.All(ctx)
}

// Caregivers returns every caregiver for selection lists.
func (s *RosterService) Caregivers(ctx context.Context) ([]domain.Caregiver, error) {
	return s.caregivers.All(ctx)
}

// PatientAxis resolves a selection string to a filter axis. The wildcard or
// an empty selection matches all patients; anything else must be the display
// name of a loaded patient.
func (s *RosterService) PatientAxis(ctx context.Context, selection string) (Axis, error) {
	if selection == "" || selection == Wildcard {
		return AxisAll(), nil
	}
	list, err := s.patients.All(ctx)
	if err != nil {
		return Axis{}, err
	}
	p := FindPatient(list, selection)
	if p == nil {
		return Axis{}, ErrUnknownSelection
	}
	return AxisID(p.ID.Int64()), nil
}

// CaregiverAxis resolves a selection string to a filter axis, symmetric to
// PatientAxis.
func (s *RosterService) CaregiverAxis(ctx context.Context, selection string) (Axis, error) {
	if selection == "" || selection == Wildcard {
		return AxisAll(), nil
	}
	list, err := s.caregivers.All(ctx)
	if err != nil {
		return Axis{}, err
	}
	c := FindCaregiver(list, selection)
	if c == nil {
		return Axis{}, ErrUnknownSelection
	}
	return AxisID(c.ID.Int64()), nil
}

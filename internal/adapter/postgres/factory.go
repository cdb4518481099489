package postgres

import "caretrack/internal/domain"

// Store is the single construction point for repositories. Each accessor
// returns a fresh wrapper; all of them share the same underlying connection.
type Store struct {
	db *DB
}

// NewStore binds a repository factory to the shared connection.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Patients returns a patient repository.
func (s *Store) Patients() domain.PatientRepository {
	return NewPatientRepo(s.db)
}

// Caregivers returns a caregiver repository.
func (s *Store) Caregivers() domain.CaregiverRepository {
	return NewCaregiverRepo(s.db)
}

// Treatments returns a treatment repository.
func (s *Store) Treatments() domain.TreatmentRepository {
	return NewTreatmentRepo(s.db)
}

// Users returns a credential repository.
func (s *Store) Users() domain.UserRepository {
	return NewUserRepo(s.db)
}

// Interface checks for the concrete repositories.
var (
	_ domain.PatientRepository   = (*PatientRepo)(nil)
	_ domain.CaregiverRepository = (*CaregiverRepo)(nil)
	_ domain.TreatmentRepository = (*TreatmentRepo)(nil)
	_ domain.UserRepository      = (*UserRepo)(nil)
)

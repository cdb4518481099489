// Package memory implements the domain repositories in memory for
// development and testing.
package memory

import (
	"context"
	"fmt"
	"sync"

	"caretrack/internal/domain"
)

// DB implements an in-memory store. Rows keep insertion order, identities
// count up from 1, and deleting a patient does not touch its treatments;
// referential deletion is the SQL store's job, not the repositories'.
type DB struct {
	mu         sync.Mutex
	patients   []domain.Patient
	caregivers []domain.Caregiver
	treatments []domain.Treatment
	users      []domain.User

	patientIDCounter   int64
	caregiverIDCounter int64
	treatmentIDCounter int64
}

// New creates an empty in-memory store.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.PatientRepository = (*PatientRepo)(nil)
var _ domain.CaregiverRepository = (*CaregiverRepo)(nil)
var _ domain.TreatmentRepository = (*TreatmentRepo)(nil)
var _ domain.UserRepository = (*UserRepo)(nil)

// Patients returns a patient repository over this store.
func (db *DB) Patients() *PatientRepo { return &PatientRepo{db: db} }

// Caregivers returns a caregiver repository over this store.
func (db *DB) Caregivers() *CaregiverRepo { return &CaregiverRepo{db: db} }

// Treatments returns a treatment repository over this store.
func (db *DB) Treatments() *TreatmentRepo { return &TreatmentRepo{db: db} }

// Users returns a credential repository over this store.
func (db *DB) Users() *UserRepo { return &UserRepo{db: db} }

// --- PatientRepository ---

// PatientRepo implements patient persistence in memory.
type PatientRepo struct {
	db *DB
}

// Create stores the patient and assigns its identity.
func (r *PatientRepo) Create(ctx context.Context, p *domain.Patient) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.patientIDCounter++
	p.ID = domain.NewID(r.db.patientIDCounter)
	r.db.patients = append(r.db.patients, *p)
	return nil
}

// ByID returns the patient with the given identity, or nil when absent.
func (r *PatientRepo) ByID(ctx context.Context, id int64) (*domain.Patient, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.patients {
		if r.db.patients[i].ID.Int64() == id {
			p := r.db.patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// All returns every patient in insertion order.
func (r *PatientRepo) All(ctx context.Context) ([]domain.Patient, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Patient, len(r.db.patients))
	copy(out, r.db.patients)
	return out, nil
}

// Update overwrites the stored patient keyed by identity; no-op when absent.
func (r *PatientRepo) Update(ctx context.Context, p domain.Patient) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.patients {
		if r.db.patients[i].ID.Equal(p.ID) {
			r.db.patients[i] = p
			return nil
		}
	}
	return nil
}

// Delete removes the patient with the given identity; no-op when absent.
// Treatments referencing the patient stay behind.
func (r *PatientRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.patients {
		if r.db.patients[i].ID.Int64() == id {
			r.db.patients = append(r.db.patients[:i], r.db.patients[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- CaregiverRepository ---

// CaregiverRepo implements caregiver persistence in memory.
type CaregiverRepo struct {
	db *DB
}

// Create stores the caregiver and assigns its identity.
func (r *CaregiverRepo) Create(ctx context.Context, c *domain.Caregiver) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.caregiverIDCounter++
	c.ID = domain.NewID(r.db.caregiverIDCounter)
	r.db.caregivers = append(r.db.caregivers, *c)
	return nil
}

// ByID returns the caregiver with the given identity, or nil when absent.
func (r *CaregiverRepo) ByID(ctx context.Context, id int64) (*domain.Caregiver, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.caregivers {
		if r.db.caregivers[i].ID.Int64() == id {
			c := r.db.caregivers[i]
			return &c, nil
		}
	}
	return nil, nil
}

// All returns every caregiver in insertion order.
func (r *CaregiverRepo) All(ctx context.Context) ([]domain.Caregiver, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Caregiver, len(r.db.caregivers))
	copy(out, r.db.caregivers)
	return out, nil
}

// Update overwrites the stored caregiver keyed by identity; no-op when absent.
func (r *CaregiverRepo) Update(ctx context.Context, c domain.Caregiver) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.caregivers {
		if r.db.caregivers[i].ID.Equal(c.ID) {
			r.db.caregivers[i] = c
			return nil
		}
	}
	return nil
}

// Delete removes the caregiver with the given identity; no-op when absent.
func (r *CaregiverRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.caregivers {
		if r.db.caregivers[i].ID.Int64() == id {
			r.db.caregivers = append(r.db.caregivers[:i], r.db.caregivers[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- TreatmentRepository ---

// TreatmentRepo implements treatment persistence in memory.
type TreatmentRepo struct {
	db *DB
}

// Create stores the treatment and assigns its identity.
func (r *TreatmentRepo) Create(ctx context.Context, t *domain.Treatment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.treatmentIDCounter++
	t.ID = domain.NewID(r.db.treatmentIDCounter)
	r.db.treatments = append(r.db.treatments, *t)
	return nil
}

// ByID returns the treatment with the given identity, or nil when absent.
func (r *TreatmentRepo) ByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.treatments {
		if r.db.treatments[i].ID.Int64() == id {
			t := r.db.treatments[i]
			return &t, nil
		}
	}
	return nil, nil
}

// All returns every treatment in insertion order.
func (r *TreatmentRepo) All(ctx context.Context) ([]domain.Treatment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Treatment, len(r.db.treatments))
	copy(out, r.db.treatments)
	return out, nil
}

// Update overwrites the stored treatment keyed by identity; no-op when absent.
func (r *TreatmentRepo) Update(ctx context.Context, t domain.Treatment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.treatments {
		if r.db.treatments[i].ID.Equal(t.ID) {
			r.db.treatments[i] = t
			return nil
		}
	}
	return nil
}

// Delete removes the treatment with the given identity; no-op when absent.
func (r *TreatmentRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.treatments {
		if r.db.treatments[i].ID.Int64() == id {
			r.db.treatments = append(r.db.treatments[:i], r.db.treatments[i+1:]...)
			return nil
		}
	}
	return nil
}

// ByColumn returns all treatments whose col equals id, in insertion order.
func (r *TreatmentRepo) ByColumn(ctx context.Context, col domain.TreatmentColumn, id int64) ([]domain.Treatment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if col != domain.ColPatient && col != domain.ColCaregiver {
		return nil, fmt.Errorf("treatment column %q is not filterable", col)
	}

	var out []domain.Treatment
	for _, t := range r.db.treatments {
		if col == domain.ColPatient && t.PatientID == id {
			out = append(out, t)
		}
		if col == domain.ColCaregiver && t.CaregiverID == id {
			out = append(out, t)
		}
	}
	return out, nil
}

// --- UserRepository ---

// UserRepo implements credential persistence in memory.
type UserRepo struct {
	db *DB
}

// Create stores a credential row. Like the keyless SQL table, nothing stops
// duplicate usernames.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.users = append(r.db.users, *u)
	return nil
}

// All returns every credential row in insertion order.
func (r *UserRepo) All(ctx context.Context) ([]domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.User, len(r.db.users))
	copy(out, r.db.users)
	return out, nil
}

package postgres

import (
	"caretrack/internal/domain"
)

// CaregiverRepo persists caregivers through the generic engine.
type CaregiverRepo struct {
	*Repo[domain.Caregiver]
}

// NewCaregiverRepo binds the caregiver mapping to the shared connection.
func NewCaregiverRepo(db *DB) *CaregiverRepo {
	return &CaregiverRepo{Repo: NewRepo(db, caregiverMapping)}
}

var caregiverMapping = Mapping[domain.Caregiver]{
	Insert: "INSERT INTO caregiver (firstname, surname, telnumber) VALUES ($1, $2, $3) RETURNING cgid",
	InsertArgs: func(c *domain.Caregiver) []any {
		return []any{c.FirstName, c.Surname, c.TelNumber}
	},
	SelectByID: "SELECT cgid, firstname, surname, telnumber FROM caregiver WHERE cgid = $1",
	SelectAll:  "SELECT cgid, firstname, surname, telnumber FROM caregiver",
	Update:     "UPDATE caregiver SET firstname = $1, surname = $2, telnumber = $3 WHERE cgid = $4",
	UpdateArgs: func(c *domain.Caregiver) []any {
		return []any{c.FirstName, c.Surname, c.TelNumber, c.ID.Int64()}
	},
	Delete: "DELETE FROM caregiver WHERE cgid = $1",
	Scan:   scanCaregiver,
	SetID: func(c *domain.Caregiver, id int64) {
		c.ID = domain.NewID(id)
	},
}

func scanCaregiver(s rowScanner) (domain.Caregiver, error) {
	var c domain.Caregiver
	var id int64
	if err := s.Scan(&id, &c.FirstName, &c.Surname, &c.TelNumber); err != nil {
		return c, err
	}
	c.ID = domain.NewID(id)
	return c, nil
}

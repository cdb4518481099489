package postgres

import (
	"caretrack/internal/domain"
)

// PatientRepo persists patients through the generic engine.
type PatientRepo struct {
	*Repo[domain.Patient]
}

// NewPatientRepo binds the patient mapping to the shared connection.
func NewPatientRepo(db *DB) *PatientRepo {
	return &PatientRepo{Repo: NewRepo(db, patientMapping)}
}

var patientMapping = Mapping[domain.Patient]{
	Insert: "INSERT INTO patient (firstname, surname, dateofbirth, carelevel, roomnumber) " +
		"VALUES ($1, $2, $3, $4, $5) RETURNING pid",
	InsertArgs: func(p *domain.Patient) []any {
		return []any{p.FirstName, p.Surname, domain.FormatDate(p.DateOfBirth), p.CareLevel, p.RoomNumber}
	},
	SelectByID: "SELECT pid, firstname, surname, dateofbirth, carelevel, roomnumber FROM patient WHERE pid = $1",
	SelectAll:  "SELECT pid, firstname, surname, dateofbirth, carelevel, roomnumber FROM patient",
	Update: "UPDATE patient SET firstname = $1, surname = $2, dateofbirth = $3, carelevel = $4, roomnumber = $5 " +
		"WHERE pid = $6",
	UpdateArgs: func(p *domain.Patient) []any {
		return []any{p.FirstName, p.Surname, domain.FormatDate(p.DateOfBirth), p.CareLevel, p.RoomNumber, p.ID.Int64()}
	},
	Delete: "DELETE FROM patient WHERE pid = $1",
	Scan:   scanPatient,
	SetID: func(p *domain.Patient, id int64) {
		p.ID = domain.NewID(id)
	},
}

func scanPatient(s rowScanner) (domain.Patient, error) {
	var p domain.Patient
	var id int64
	var dob string
	if err := s.Scan(&id, &p.FirstName, &p.Surname, &dob, &p.CareLevel, &p.RoomNumber); err != nil {
		return p, err
	}
	p.ID = domain.NewID(id)

	var err error
	p.DateOfBirth, err = domain.ParseDate(dob)
	return p, err
}

package postgres

import (
	"context"
	"fmt"

	"caretrack/internal/domain"
)

// TreatmentRepo persists treatments through the generic engine and adds the
// column-scoped lookup the filter engine builds its candidate sets from.
type TreatmentRepo struct {
	*Repo[domain.Treatment]
}

// NewTreatmentRepo binds the treatment mapping to the shared connection.
func NewTreatmentRepo(db *DB) *TreatmentRepo {
	return &TreatmentRepo{Repo: NewRepo(db, treatmentMapping)}
}

const treatmentColumns = `tid, pid, treatment_date, "begin", "end", description, remark, cgid`

var treatmentMapping = Mapping[domain.Treatment]{
	Insert: `INSERT INTO treatment (pid, treatment_date, "begin", "end", description, remark, cgid) ` +
		"VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING tid",
	InsertArgs: func(t *domain.Treatment) []any {
		return []any{
			t.PatientID, domain.FormatDate(t.Date), t.Begin.String(), t.End.String(),
			t.Description, t.Remark, t.CaregiverID,
		}
	},
	SelectByID: "SELECT " + treatmentColumns + " FROM treatment WHERE tid = $1",
	SelectAll:  "SELECT " + treatmentColumns + " FROM treatment",
	Update: `UPDATE treatment SET pid = $1, treatment_date = $2, "begin" = $3, "end" = $4, ` +
		"description = $5, remark = $6, cgid = $7 WHERE tid = $8",
	UpdateArgs: func(t *domain.Treatment) []any {
		return []any{
			t.PatientID, domain.FormatDate(t.Date), t.Begin.String(), t.End.String(),
			t.Description, t.Remark, t.CaregiverID, t.ID.Int64(),
		}
	},
	Delete: "DELETE FROM treatment WHERE tid = $1",
	Scan:   scanTreatment,
	SetID: func(t *domain.Treatment, id int64) {
		t.ID = domain.NewID(id)
	},
}

func scanTreatment(s rowScanner) (domain.Treatment, error) {
	var t domain.Treatment
	var id int64
	var date, begin, end string
	err := s.Scan(&id, &t.PatientID, &date, &begin, &end, &t.Description, &t.Remark, &t.CaregiverID)
	if err != nil {
		return t, err
	}
	t.ID = domain.NewID(id)

	if t.Date, err = domain.ParseDate(date); err != nil {
		return t, err
	}
	if t.Begin, err = domain.ParseTimeOfDay(begin); err != nil {
		return t, err
	}
	t.End, err = domain.ParseTimeOfDay(end)
	return t, err
}

// ByColumn returns all treatments whose col equals id. The column name is
// spliced into the statement, so only the known filterable columns pass.
func (r *TreatmentRepo) ByColumn(ctx context.Context, col domain.TreatmentColumn, id int64) ([]domain.Treatment, error) {
	switch col {
	case domain.ColPatient, domain.ColCaregiver:
	default:
		return nil, fmt.Errorf("treatment column %q is not filterable", col)
	}
	return r.list(ctx, "SELECT "+treatmentColumns+" FROM treatment WHERE "+string(col)+" = $1", id)
}

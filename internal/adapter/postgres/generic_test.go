package postgres

import (
	"context"
	"fmt"
	"testing"

	"caretrack/internal/domain"
)

func TestCreateAssignsIdentityFromReturnedKey(t *testing.T) {
	repo := NewCaregiverRepo(stubDB("key"))

	c := domain.Caregiver{
		Person:    domain.Person{FirstName: "Martina", Surname: "Paul"},
		TelNumber: "046572046732",
	}
	if err := repo.Create(context.Background(), &c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !c.ID.Assigned() || c.ID.Int64() != 7 {
		t.Errorf("expected identity 7 from the returned key, got %v", c.ID)
	}
}

func TestCreateFailureLeavesIdentityUnassigned(t *testing.T) {
	repo := NewCaregiverRepo(stubDB("fail"))

	c := domain.Caregiver{Person: domain.Person{FirstName: "Alisa", Surname: "Franzen"}}
	if err := repo.Create(context.Background(), &c); err == nil {
		t.Fatal("expected the insert to fail")
	}
	if c.ID.Assigned() {
		t.Errorf("identity must stay unassigned after a failed create, got %v", c.ID)
	}
}

func TestByIDNoRow(t *testing.T) {
	repo := NewCaregiverRepo(stubDB("empty"))

	got, err := repo.ByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing row, got %+v", got)
	}
}

// fakeRow drives the scan functions directly, standing in for sql.Row.
type fakeRow struct{ vals []any }

func (f fakeRow) Scan(dest ...any) error {
	if len(dest) != len(f.vals) {
		return fmt.Errorf("scan: %d targets for %d values", len(dest), len(f.vals))
	}
	for i, v := range f.vals {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *string:
			*d = v.(string)
		default:
			return fmt.Errorf("scan: unsupported target %T", d)
		}
	}
	return nil
}

func TestScanTreatmentConvertsStoredText(t *testing.T) {
	row := fakeRow{vals: []any{
		int64(3), int64(1), "2023-06-03", "11:00", "15:00",
		"Gespräch", "ruhig verlaufen", int64(5),
	}}
	tr, err := scanTreatment(row)
	if err != nil {
		t.Fatalf("scanTreatment: %v", err)
	}
	if tr.ID.Int64() != 3 || tr.PatientID != 1 || tr.CaregiverID != 5 {
		t.Errorf("key columns mismatch: %+v", tr)
	}
	if domain.FormatDate(tr.Date) != "2023-06-03" {
		t.Errorf("date round trip = %q", domain.FormatDate(tr.Date))
	}
	if tr.Begin.String() != "11:00" || tr.End.String() != "15:00" {
		t.Errorf("time round trip = %q, %q", tr.Begin, tr.End)
	}
	if !tr.End.After(tr.Begin) {
		t.Error("expected end after begin on read back")
	}
}

func TestScanTreatmentRejectsBadTime(t *testing.T) {
	row := fakeRow{vals: []any{
		int64(3), int64(1), "2023-06-03", "25:00", "15:00", "KG", "", int64(5),
	}}
	if _, err := scanTreatment(row); err == nil {
		t.Error("expected error for malformed begin time")
	}
}

func TestScanPatientConvertsStoredDate(t *testing.T) {
	row := fakeRow{vals: []any{int64(2), "Martina", "Gerdsen", "1954-08-12", "5", "010"}}
	p, err := scanPatient(row)
	if err != nil {
		t.Fatalf("scanPatient: %v", err)
	}
	if p.ID.Int64() != 2 || domain.FormatDate(p.DateOfBirth) != "1954-08-12" {
		t.Errorf("read back mismatch: %+v", p)
	}
}

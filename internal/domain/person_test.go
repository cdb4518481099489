package domain_test

import (
	"testing"

	"caretrack/internal/domain"
)

func TestIDStates(t *testing.T) {
	var unassigned domain.ID
	if unassigned.Assigned() {
		t.Error("zero ID must be unassigned")
	}
	if unassigned.Int64() != 0 {
		t.Errorf("unassigned Int64 = %d; want 0", unassigned.Int64())
	}
	if unassigned.Equal(unassigned) {
		t.Error("unassigned identities must never compare equal")
	}

	a := domain.NewID(7)
	b := domain.NewID(7)
	c := domain.NewID(8)
	if !a.Assigned() || a.Int64() != 7 {
		t.Errorf("NewID(7) = %v", a)
	}
	if !a.Equal(b) {
		t.Error("same assigned identity must compare equal")
	}
	if a.Equal(c) {
		t.Error("different identities must not compare equal")
	}
}

func TestDisplayName(t *testing.T) {
	p := domain.Person{FirstName: "Martina", Surname: "Gerdsen"}
	if got := p.DisplayName(); got != "Gerdsen, Martina" {
		t.Errorf("DisplayName = %q; want %q", got, "Gerdsen, Martina")
	}
}

func TestAddTreatmentDeduplicates(t *testing.T) {
	var p domain.Patient
	t1 := domain.Treatment{ID: domain.NewID(1)}
	t2 := domain.Treatment{ID: domain.NewID(2)}

	if !p.AddTreatment(t1) || !p.AddTreatment(t2) {
		t.Fatal("expected new treatments to be added")
	}
	if p.AddTreatment(t1) {
		t.Error("expected duplicate identity to be rejected")
	}
	if len(p.Treatments) != 2 {
		t.Errorf("expected 2 treatments, got %d", len(p.Treatments))
	}
}

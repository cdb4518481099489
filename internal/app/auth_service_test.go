package app_test

import (
	"context"
	"errors"
	"testing"

	"caretrack/internal/app"
	"caretrack/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users []domain.User
	err   error
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	m.users = append(m.users, *u)
	return nil
}

func (m *mockUserRepo) All(ctx context.Context) ([]domain.User, error) {
	return m.users, m.err
}

func TestLoginBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Hallo123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &mockUserRepo{users: []domain.User{{Username: "Lili Bauer", Password: string(hash)}}}
	svc := app.NewAuthService(repo)

	u, err := svc.Login(context.Background(), "Lili Bauer", "Hallo123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Username != "Lili Bauer" {
		t.Errorf("unexpected user %q", u.Username)
	}

	if _, err := svc.Login(context.Background(), "Lili Bauer", "falsch"); !errors.Is(err, app.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginLegacyPlaintext(t *testing.T) {
	// Rows inherited from the legacy database store the password as-is.
	repo := &mockUserRepo{users: []domain.User{{Username: "Marvin Meier", Password: "BaumHierDa"}}}
	svc := app.NewAuthService(repo)

	if _, err := svc.Login(context.Background(), "Marvin Meier", "BaumHierDa"); err != nil {
		t.Fatalf("legacy login: %v", err)
	}
	if _, err := svc.Login(context.Background(), "Marvin Meier", "baumhierda"); !errors.Is(err, app.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginPlaintextResemblingHash(t *testing.T) {
	// A legacy password that happens to start with "$2" must still be
	// compared as plain text, not fed to bcrypt.
	repo := &mockUserRepo{users: []domain.User{{Username: "Kasse", Password: "$2 und 50 Cent"}}}
	svc := app.NewAuthService(repo)

	if _, err := svc.Login(context.Background(), "Kasse", "$2 und 50 Cent"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.Login(context.Background(), "Kasse", "$2"); !errors.Is(err, app.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := app.NewAuthService(&mockUserRepo{})
	if _, err := svc.Login(context.Background(), "Niemand", "egal"); !errors.Is(err, app.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginStoreFailure(t *testing.T) {
	storeErr := errors.New("store down")
	svc := app.NewAuthService(&mockUserRepo{err: storeErr})
	if _, err := svc.Login(context.Background(), "Lili Bauer", "Hallo123"); !errors.Is(err, storeErr) {
		t.Errorf("expected store error to surface, got %v", err)
	}
}

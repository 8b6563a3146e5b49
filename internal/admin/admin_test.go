package admin

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/carmelyp/aircon-backend/internal/slot"
)

func newTestService() (*Service, slot.Repository) {
	slots := slot.NewInMemoryRepository()
	return NewService(slots, log.New(io.Discard, "", 0)), slots
}

func TestLogin_DefaultCredentials(t *testing.T) {
	svc, slots := newTestService()

	if err := svc.Login("admin", "admin123"); err != nil {
		t.Fatalf("login with defaults: %v", err)
	}
	if !svc.IsAuthenticated() {
		t.Fatal("expected open session after login")
	}
	raw, err := slots.Read(context.Background(), "adminAuth")
	if err != nil || raw != "true" {
		t.Fatalf("session slot = %q, %v", raw, err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Login("admin", "admin124"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// comparison is case sensitive
	if err := svc.Login("Admin", "admin123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for cased username, got %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatal("failed login must not open a session")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout()
	if svc.IsAuthenticated() {
		t.Fatal("session should be closed after logout")
	}
	// logging out twice is fine
	svc.Logout()
}

func TestUpdateCredentials_KeepsSessionOpen(t *testing.T) {
	svc, slots := newTestService()

	if err := svc.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.UpdateCredentials("carmel", "s3cret")
	if !svc.IsAuthenticated() {
		t.Fatal("credential change must not invalidate the open session")
	}

	if err := svc.Login("admin", "admin123"); err != ErrInvalidCredentials {
		t.Fatalf("old credentials should be rejected, got %v", err)
	}
	if err := svc.Login("carmel", "s3cret"); err != nil {
		t.Fatalf("new credentials rejected: %v", err)
	}

	// a service built over the same slots picks up the stored credentials
	restored := NewService(slots, log.New(io.Discard, "", 0))
	if err := restored.Login("carmel", "s3cret"); err != nil {
		t.Fatalf("restored service rejected stored credentials: %v", err)
	}
}

func TestNewService_CorruptCredentialsFallBack(t *testing.T) {
	slots := slot.NewInMemoryRepository()
	if err := slots.Write(context.Background(), "adminCredentials", "{not json"); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	svc := NewService(slots, log.New(io.Discard, "", 0))
	if err := svc.Login("admin", "admin123"); err != nil {
		t.Fatalf("defaults should apply when stored credentials are unreadable: %v", err)
	}
}

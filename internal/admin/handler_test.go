package admin

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/carmelyp/aircon-backend/internal/slot"
)

func newTestApp() *fiber.App {
	svc := NewService(slot.NewInMemoryRepository(), log.New(io.Discard, "", 0))
	app := fiber.New()
	h := NewHandler(svc)
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestSignInEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/admin/sign-in", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["token"] == "" {
		t.Fatal("token missing from response")
	}
}

func TestSignInEndpoint_BadCredentials(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/admin/sign-in", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestSessionEndpoint(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/session", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var body map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["authenticated"] {
		t.Fatal("fresh service should not report an open session")
	}
}

package content

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/carmelyp/aircon-backend/internal/i18n"
	"github.com/carmelyp/aircon-backend/internal/slot"
)

func newTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()
	slots := slot.NewInMemoryRepository()
	store := NewStore(slots, nil, discard())
	locale := i18n.NewService(slots, discard())

	app := fiber.New()
	h := NewHandler(store, locale)
	h.RegisterPublicRoutes(app)
	// admin routes mounted without the jwt middleware; the gate is
	// exercised separately in cmd wiring
	h.RegisterAdminRoutes(app)
	return app, store
}

func TestGetContent(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/content", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Hero.Title == "" || len(doc.Services) == 0 {
		t.Fatalf("document looks empty: %+v", doc.Hero)
	}
}

func TestGetPostBySlug(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/content/posts/first-blog-post", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/content/posts/missing-slug", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status for unknown slug = %d", resp.StatusCode)
	}
}

func TestGetFAQs_GroupedWithDefaultCategory(t *testing.T) {
	app, store := newTestApp(t)
	store.AddFAQ(FAQItem{Question: "q", Answer: "a"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/content/faqs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var groups []FAQGroup
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, g := range groups {
		if g.Category == "כללי" {
			found = true
		}
	}
	if !found {
		t.Fatalf("uncategorised items should land in the default bucket: %+v", groups)
	}
}

func TestCreateContactLead(t *testing.T) {
	app, store := newTestApp(t)

	body := `{"name":"Rina","phone":"050-1111111","message":"תיקון מזגן"}`
	req := httptest.NewRequest("POST", "/api/v1/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var lead Lead
	if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lead.ID == "" || lead.Source != LeadSourceContactForm {
		t.Fatalf("unexpected lead: %+v", lead)
	}
	if len(store.Snapshot().Leads) != 1 {
		t.Fatal("lead not stored")
	}
}

func TestCreateContactLead_MissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/leads", strings.NewReader(`{"name":"Rina"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCreateServiceRequest(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"name":"Yossi","phone":"050-2222222","address":"רעננה","serviceType":"התקנה","description":"מזגן חדש לסלון"}`
	req := httptest.NewRequest("POST", "/api/v1/service-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var lead Lead
	if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lead.Source != LeadSourceServiceRequest {
		t.Fatalf("source = %q", lead.Source)
	}
	if lead.Message == nil || !strings.Contains(*lead.Message, "התקנה") {
		t.Fatalf("message should carry the service type: %v", lead.Message)
	}
	if lead.ResidentialArea == nil || *lead.ResidentialArea != "רעננה" {
		t.Fatalf("residentialArea = %v", lead.ResidentialArea)
	}
}

func TestUpdateHeroSection(t *testing.T) {
	app, store := newTestApp(t)

	body := `{"title":"חדש","subtitle":"s","description":"d","backgroundImage":"img"}`
	req := httptest.NewRequest("PUT", "/api/v1/admin/content/hero", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if store.Snapshot().Hero.Title != "חדש" {
		t.Fatal("hero not updated")
	}
}

func TestUpdateUnknownSection(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/v1/admin/content/unknown", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAddAndPatchAndDeleteTestimonial(t *testing.T) {
	app, store := newTestApp(t)

	body := `{"name":"דנה","location":"חיפה","rating":5,"text":"שירות מצוין"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/content/testimonials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	var added Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&added); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req = httptest.NewRequest("PUT", "/api/v1/admin/content/testimonials/"+added.ID, strings.NewReader(`{"text":"מעודכן"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	var patched Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&patched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if patched.Text != "מעודכן" || patched.Name != "דנה" {
		t.Fatalf("patch result: %+v", patched)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/admin/content/testimonials/"+added.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	for _, item := range store.Snapshot().Testimonials {
		if item.ID == added.ID {
			t.Fatal("testimonial still present after delete")
		}
	}
}

func TestPatchUnknownItem(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/v1/admin/content/services/nope", strings.NewReader(`{"titleKey":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestDeleteLeadViaAdmin(t *testing.T) {
	app, store := newTestApp(t)
	lead := store.AddLead(NewLeadData{Name: "x", Phone: "050-3333333", Source: LeadSourceManual})

	req := httptest.NewRequest("DELETE", "/api/v1/admin/content/leads/"+lead.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(store.Snapshot().Leads) != 0 {
		t.Fatal("lead still present")
	}
}

func TestCreateManualLead(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"name":"ידני","phone":"050-4444444"}`
	req := httptest.NewRequest("POST", "/api/v1/admin/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var lead Lead
	if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lead.Source != LeadSourceManual {
		t.Fatalf("source = %q", lead.Source)
	}
}

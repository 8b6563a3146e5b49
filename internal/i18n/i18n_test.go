package i18n

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/carmelyp/aircon-backend/internal/slot"
)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func TestT_LocalesDiffer(t *testing.T) {
	he := T(LangHebrew, "nav.home")
	en := T(LangEnglish, "nav.home")
	if he == "" || en == "" {
		t.Fatal("nav.home missing from a locale table")
	}
	if he == en {
		t.Fatalf("locales should differ for nav.home: %q", he)
	}
}

func TestT_MissingKeyReturnsKey(t *testing.T) {
	if got := T(LangHebrew, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key = %q", got)
	}
}

func TestT_FallbackWins(t *testing.T) {
	if got := T(LangHebrew, "faq.defaultCategory", "כללי"); got != "כללי" {
		t.Fatalf("fallback = %q", got)
	}
	// a known key ignores the fallback
	if got := T(LangHebrew, "nav.home", "x"); got == "x" {
		t.Fatal("fallback used despite the key existing")
	}
}

func TestDirection(t *testing.T) {
	if Direction(LangHebrew) != "rtl" {
		t.Fatal("hebrew must be rtl")
	}
	if Direction(LangEnglish) != "ltr" {
		t.Fatal("english must be ltr")
	}
}

func TestService_DefaultsToHebrew(t *testing.T) {
	svc := NewService(slot.NewInMemoryRepository(), discard())
	if svc.Current() != LangHebrew {
		t.Fatalf("default locale = %q", svc.Current())
	}
}

func TestService_TogglePersists(t *testing.T) {
	slots := slot.NewInMemoryRepository()
	svc := NewService(slots, discard())

	if got := svc.Toggle(); got != LangEnglish {
		t.Fatalf("toggle = %q", got)
	}
	raw, err := slots.Read(context.Background(), "language")
	if err != nil || raw != LangEnglish {
		t.Fatalf("language slot = %q, %v", raw, err)
	}

	// a fresh service over the same slots restores the choice
	restored := NewService(slots, discard())
	if restored.Current() != LangEnglish {
		t.Fatalf("restored locale = %q", restored.Current())
	}
	if got := restored.Toggle(); got != LangHebrew {
		t.Fatalf("second toggle = %q", got)
	}
}

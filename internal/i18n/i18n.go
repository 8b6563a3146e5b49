// Package i18n holds the static Hebrew/English string table and the
// process-wide locale choice.
package i18n

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/carmelyp/aircon-backend/internal/slot"
)

const (
	LangHebrew  = "he"
	LangEnglish = "en"

	languageSlot = "language"
)

// T resolves key for the given locale. A missing key resolves to the
// supplied fallback, or to the key itself so untranslated strings stand out.
func T(locale, key string, fallback ...string) string {
	if table, ok := translations[locale]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return key
}

// Direction returns the page text direction for a locale.
func Direction(locale string) string {
	if locale == LangHebrew {
		return "rtl"
	}
	return "ltr"
}

// Table returns a copy of the full string table for a locale, or false for
// an unsupported locale.
func Table(locale string) (map[string]string, bool) {
	table, ok := translations[locale]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out, true
}

// Service holds the current locale, restored from the `language` slot and
// mutable only via Toggle.
type Service struct {
	mu     sync.Mutex
	locale string
	slots  slot.Repository
	logger *log.Logger
}

func NewService(slots slot.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	s := &Service{locale: LangHebrew, slots: slots, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if saved, err := slots.Read(ctx, languageSlot); err == nil {
		if saved == LangHebrew || saved == LangEnglish {
			s.locale = saved
		}
	}
	return s
}

func (s *Service) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Toggle flips between the two locales, persists the choice and returns the
// new locale. The caller applies the matching Direction to the page.
func (s *Service) Toggle() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locale == LangHebrew {
		s.locale = LangEnglish
	} else {
		s.locale = LangHebrew
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.slots.Write(ctx, languageSlot, s.locale); err != nil {
		s.logger.Printf("i18n: persisting language choice failed: %v", err)
	}
	return s.locale
}

// Translate resolves key under the current locale.
func (s *Service) Translate(key string, fallback ...string) string {
	return T(s.Current(), key, fallback...)
}

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/carmelyp/aircon-backend/internal/slot"
)

const (
	credentialsSlot = "adminCredentials"
	sessionSlot     = "adminAuth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func DefaultCredentials() Credentials {
	return Credentials{Username: "admin", Password: "admin123"}
}

// Service owns the admin sign-in state. Credentials are stored and
// compared in plain text, matching the data the site has always kept.
type Service struct {
	mu     sync.Mutex
	creds  Credentials
	slots  slot.Repository
	logger *log.Logger
}

func NewService(slots slot.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	s := &Service{creds: DefaultCredentials(), slots: slots, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	raw, err := slots.Read(ctx, credentialsSlot)
	if err != nil {
		if !errors.Is(err, slot.ErrNotFound) {
			logger.Printf("admin: read credentials: %v", err)
		}
		return s
	}
	var stored Credentials
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Printf("admin: stored credentials unreadable, using defaults: %v", err)
		return s
	}
	if stored.Username != "" && stored.Password != "" {
		s.creds = stored
	}
	return s
}

// Login checks the credentials with a case sensitive comparison and
// records the open session.
func (s *Service) Login(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if username != s.creds.Username || password != s.creds.Password {
		return ErrInvalidCredentials
	}
	s.writeSlot(sessionSlot, "true")
	return nil
}

func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.slots.Delete(ctx, sessionSlot); err != nil {
		s.logger.Printf("admin: clear session: %v", err)
	}
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	raw, err := s.slots.Read(ctx, sessionSlot)
	if err != nil {
		return false
	}
	return raw == "true"
}

// UpdateCredentials replaces both username and password. An open
// session stays open.
func (s *Service) UpdateCredentials(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{Username: username, Password: password}
	raw, err := json.Marshal(s.creds)
	if err != nil {
		s.logger.Printf("admin: marshal credentials: %v", err)
		return
	}
	s.writeSlot(credentialsSlot, string(raw))
}

func (s *Service) writeSlot(name, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.slots.Write(ctx, name, value); err != nil {
		s.logger.Printf("admin: write %s: %v", name, err)
	}
}

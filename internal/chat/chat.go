package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carmelyp/aircon-backend/internal/content"
)

const (
	StateIdle              = "idle"
	StateAwaitingUserInput = "awaitingUserInput"
	StateBotTyping         = "botTyping"
)

const (
	greetingText     = "שלום! אני הבוט החכם של ירון פרסי מיזוג אוויר. איך אוכל לעזור לך היום?"
	apologyText      = "מצטער, אני מתקשה להתחבר כרגע. אנא נסה שוב מאוחר יותר."
	confirmationText = "תודה! קיבלנו את פנייתך ונציג מטעמנו ייצור איתך קשר בהקדם."
)

var ErrSessionNotFound = errors.New("chat session not found")

type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
}

type Session struct {
	ID       string    `json:"id"`
	State    string    `json:"state"`
	Messages []Message `json:"messages"`
}

// LeadSink receives leads the bot captures mid-conversation.
type LeadSink interface {
	AddLead(data content.NewLeadData) content.Lead
}

// intent keywords checked in both the user text and the bot reply
var leadKeywords = []string{
	"quote", "contact me", "call me",
	"הצעת מחיר", "צור קשר", "חזור אליי", "דבר איתי",
}

var (
	phoneRegex = regexp.MustCompile(`\b\d{2,4}-?\d{7}\b|\b\d{10}\b`)
	emailRegex = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
)

type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
	client   CompletionClient
	leads    LeadSink
	logger   *log.Logger
	now      func() time.Time

	// scanBotText widens intent detection to the bot reply. Off for the
	// stub: its canned boilerplate contains the intent keywords (the
	// default reply says "צור קשר"), so scanning it would turn every
	// fallback exchange into a junk lead.
	scanBotText bool
}

func NewService(client CompletionClient, leads LeadSink, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	_, canned := client.(StubClient)
	return &Service{
		sessions:    make(map[string]*Session),
		client:      client,
		leads:       leads,
		logger:      logger,
		now:         time.Now,
		scanBotText: !canned,
	}
}

// CreateSession opens a conversation seeded with the bot greeting.
func (s *Service) CreateSession() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &Session{
		ID:    uuid.NewString(),
		State: StateAwaitingUserInput,
		Messages: []Message{
			{ID: 1, Text: greetingText, IsBot: true, Timestamp: s.now()},
		},
	}
	s.sessions[session.ID] = session
	return *session
}

func (s *Service) GetSession(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *session, nil
}

// Send appends the user message, asks the completion client for a reply
// and runs lead capture over the exchange. Blank input is a no-op.
func (s *Service) Send(ctx context.Context, sessionID, text string) (Session, error) {
	if strings.TrimSpace(text) == "" {
		return s.GetSession(sessionID)
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return Session{}, ErrSessionNotFound
	}

	// window for the contact-detail fallback search: the user messages
	// that preceded this one
	recentUserTexts := recentUserMessages(session.Messages, 3)

	userMessage := Message{
		ID:        len(session.Messages) + 1,
		Text:      text,
		IsBot:     false,
		Timestamp: s.now(),
	}
	session.Messages = append(session.Messages, userMessage)
	session.State = StateBotTyping

	// bot messages plus the new user message, in api shape
	apiMessages := make([]CompletionMessage, 0, len(session.Messages))
	for _, m := range session.Messages {
		if m.IsBot {
			apiMessages = append(apiMessages, CompletionMessage{Role: "assistant", Content: m.Text})
		}
	}
	apiMessages = append(apiMessages, CompletionMessage{Role: "user", Content: text})
	s.mu.Unlock()

	botText, err := s.client.Complete(ctx, apiMessages)

	s.mu.Lock()
	defer s.mu.Unlock()
	session.State = StateIdle

	if err != nil {
		s.logger.Printf("chat: completion for session %s failed: %v", sessionID, err)
		s.appendBot(session, apologyText)
		return *session, nil
	}
	s.appendBot(session, botText)

	botIntentText := botText
	if !s.scanBotText {
		botIntentText = ""
	}
	if hasLeadIntent(text, botIntentText) {
		s.captureLead(session, userMessage.Text, botText, recentUserTexts)
	}
	return *session, nil
}

func (s *Service) appendBot(session *Session, text string) {
	session.Messages = append(session.Messages, Message{
		ID:        len(session.Messages) + 1,
		Text:      text,
		IsBot:     true,
		Timestamp: s.now(),
	})
}

func hasLeadIntent(userText, botText string) bool {
	userLower := strings.ToLower(userText)
	botLower := strings.ToLower(botText)
	for _, keyword := range leadKeywords {
		if strings.Contains(userLower, keyword) || strings.Contains(botLower, keyword) {
			return true
		}
	}
	return false
}

func (s *Service) captureLead(session *Session, userText, botText string, recentUserTexts string) {
	phone := "N/A"
	email := "N/A"

	if m := phoneRegex.FindString(userText); m != "" {
		phone = m
	}
	if m := emailRegex.FindString(userText); m != "" {
		email = m
	}
	// widen the search to the last few user messages when the latest
	// one carries no contact details
	if phone == "N/A" {
		if m := phoneRegex.FindString(recentUserTexts); m != "" {
			phone = m
		}
	}
	if email == "N/A" {
		if m := emailRegex.FindString(recentUserTexts); m != "" {
			email = m
		}
	}

	message := truncate(fmt.Sprintf("User interaction: %q. Bot response: %q.", userText, botText), 500)
	area := "Unknown"
	s.leads.AddLead(content.NewLeadData{
		Name:            "ChatBot Lead",
		Phone:           phone,
		Email:           &email,
		Message:         &message,
		Source:          content.LeadSourceChatBot,
		ResidentialArea: &area,
	})
	s.appendBot(session, confirmationText)
}

func recentUserMessages(messages []Message, n int) string {
	texts := make([]string, 0, n)
	for _, m := range messages {
		if !m.IsBot {
			texts = append(texts, m.Text)
		}
	}
	if len(texts) > n {
		texts = texts[len(texts)-n:]
	}
	return strings.Join(texts, " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

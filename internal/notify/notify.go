package notify

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/carmelyp/aircon-backend/internal/content"
)

// Notifier forwards new leads to the business owner. Every channel is
// best effort, a delivery failure never reaches the caller.
type Notifier struct {
	client        *http.Client
	webhookURL    string
	adminEmail    string
	adminWhatsApp string
	logger        *log.Logger
}

func NewNotifier(webhookURL, adminEmail, adminWhatsApp string, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.Default()
	}
	return &Notifier{
		client:        &http.Client{Timeout: 10 * time.Second},
		webhookURL:    webhookURL,
		adminEmail:    adminEmail,
		adminWhatsApp: adminWhatsApp,
		logger:        logger,
	}
}

// ForwardLead pushes the lead to the configured webhook and logs the
// email/whatsapp notifications. Intended to run in its own goroutine.
func (n *Notifier) ForwardLead(lead content.Lead) {
	n.postWebhook(lead)
	n.logEmail(lead)
	n.logWhatsApp(lead)
}

func (n *Notifier) postWebhook(lead content.Lead) {
	if n.webhookURL == "" {
		return
	}
	body, err := json.Marshal(lead)
	if err != nil {
		n.logger.Printf("notify: marshal lead %s: %v", lead.ID, err)
		return
	}
	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		n.logger.Printf("notify: webhook delivery for lead %s failed: %v", lead.ID, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.logger.Printf("notify: webhook for lead %s returned %d", lead.ID, resp.StatusCode)
		return
	}
	n.logger.Printf("notify: lead %s forwarded to webhook", lead.ID)
}

func (n *Notifier) logEmail(lead content.Lead) {
	if n.adminEmail == "" {
		return
	}
	n.logger.Printf("notify: email to %s | New lead: %s, phone %s, email %s, source %s",
		n.adminEmail, lead.Name, lead.Phone, orNA(lead.Email), lead.Source)
}

func (n *Notifier) logWhatsApp(lead content.Lead) {
	if n.adminWhatsApp == "" {
		return
	}
	n.logger.Printf("notify: whatsapp to %s | New lead: %s, phone %s, area %s",
		n.adminWhatsApp, lead.Name, lead.Phone, orNA(lead.ResidentialArea))
}

func orNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tompettersson/reparatur-formular/internal/config"
)

// ResendMailer delivers mail through an HTTP transactional mail API
// (Resend-compatible JSON payload).
type ResendMailer struct {
	apiURL string
	apiKey string
	client *http.Client
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Cc      []string `json:"cc,omitempty"`
	Bcc     []string `json:"bcc,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

func NewResendMailer(cfg config.MailConfig) *ResendMailer {
	return &ResendMailer{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *ResendMailer) Send(ctx context.Context, e Email) error {
	if m.apiURL == "" || m.apiKey == "" {
		return fmt.Errorf("mail API credentials not configured")
	}

	payload := resendPayload{
		From:    formatAddress(e.FromName, e.From),
		To:      e.To,
		Cc:      e.Cc,
		Bcc:     e.Bcc,
		Subject: e.Subject,
		Text:    e.TextBody,
		HTML:    e.HTMLBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("mail API error: %d", res.StatusCode)
	}
	return nil
}

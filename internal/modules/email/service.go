package email

import (
	"context"
	"fmt"

	"github.com/tompettersson/reparatur-formular/internal/config"
	"github.com/tompettersson/reparatur-formular/internal/mailer"
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
)

// Notifier builds and sends the customer-facing mails. It implements
// orders.Notifier; callers treat failures as log-only.
type Notifier struct {
	mailer   mailer.Service
	fromAddr string
	fromName string
}

func NewNotifier(m mailer.Service, cfg config.MailConfig) *Notifier {
	return &Notifier{mailer: m, fromAddr: cfg.FromAddr, fromName: cfg.FromName}
}

// NewMailerFromConfig picks the configured transport. The mock driver is
// the development default so missing credentials never break intake.
func NewMailerFromConfig(cfg config.Config) mailer.Service {
	switch cfg.Mail.Driver {
	case "smtp":
		return mailer.NewSMTPMailer(cfg.SMTP)
	case "resend":
		return mailer.NewResendMailer(cfg.Mail)
	default:
		return &mailer.Mock{}
	}
}

func (n *Notifier) OrderConfirmation(ctx context.Context, o orders.Order, items []orders.OrderItem) error {
	msg := orderConfirmationEmail(o, items)
	return n.send(ctx, o.Email, msg)
}

func (n *Notifier) StatusChanged(ctx context.Context, o orders.Order, change orders.OrderStatusChange) error {
	msg := statusUpdateEmail(o, change)
	return n.send(ctx, o.Email, msg)
}

type message struct {
	Subject string
	Text    string
	HTML    string
}

func (n *Notifier) send(ctx context.Context, to string, msg message) error {
	if to == "" {
		return fmt.Errorf("email: recipient address missing")
	}
	return n.mailer.Send(ctx, mailer.Email{
		FromName: n.fromName,
		From:     n.fromAddr,
		To:       []string{to},
		Subject:  msg.Subject,
		TextBody: msg.Text,
		HTMLBody: msg.HTML,
	})
}

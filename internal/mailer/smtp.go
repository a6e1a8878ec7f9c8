package mailer

import (
	"context"
	"encoding/json"

	"gopkg.in/gomail.v2"
)

// SMTPDispatcher delivers through a plain SMTP relay when no HTTP provider
// is configured
type SMTPDispatcher struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPDispatcher(cfg Config) *SMTPDispatcher {
	return &SMTPDispatcher{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (d *SMTPDispatcher) Send(ctx context.Context, to, subject, html string) ([]byte, error) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", d.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := d.dialer.DialAndSend(msg); err != nil {
		return nil, &ProviderError{Status: 502, Message: err.Error()}
	}

	// SMTP has no response body; return a small ack so callers always get
	// provider JSON on success.
	ack, _ := json.Marshal(map[string]string{"status": "sent", "to": to})
	return ack, nil
}

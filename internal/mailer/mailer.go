package mailer

import (
	"context"
	"fmt"
	"time"
)

// Config selects and configures the outbound email provider
type Config struct {
	Provider     string // "resend" or "smtp"
	ResendAPIKey string
	ResendURL    string
	From         string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	Timeout      time.Duration
}

// Dispatcher sends one rendered email and returns the provider's response
// body. Dispatch is single-attempt; retries are the caller's decision.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, html string) ([]byte, error)
}

// ProviderError carries the provider's own status and message so callers
// can distinguish a provider failure from a local one.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider error (status %d): %s", e.Status, e.Message)
}

// NewDispatcher builds the configured dispatcher. SMTP is the fallback when
// no Resend API key is configured.
func NewDispatcher(cfg Config) Dispatcher {
	if cfg.Provider == "smtp" || cfg.ResendAPIKey == "" {
		return NewSMTPDispatcher(cfg)
	}
	return NewResendClient(cfg)
}

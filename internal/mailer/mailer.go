// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mailer delivers rendered reports as HTML email over SMTP.
// Each Send is a single STARTTLS-authenticated submission with no retry.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/mail.v2"

	"github.com/pdiddy/meeting-report/pkg/types"
)

// DefaultTimeout bounds a send when SMTPConfig.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// ErrInvalidRecipient is returned when the recipient is not an email address.
var ErrInvalidRecipient = errors.New("invalid recipient address")

// sender submits composed messages. *mail.Dialer satisfies it.
type sender interface {
	DialAndSend(m ...*mail.Message) error
}

// Mailer sends HTML email through one SMTP account.
type Mailer struct {
	cfg      types.SMTPConfig
	validate *validator.Validate

	// dial builds the sender for one submission with the given timeout.
	dial func(cfg types.SMTPConfig, timeout time.Duration) sender
}

// New validates cfg and returns a Mailer for it.
func New(cfg types.SMTPConfig) (*Mailer, error) {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid smtp config: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Mailer{cfg: cfg, validate: v, dial: newDialer}, nil
}

func newDialer(cfg types.SMTPConfig, timeout time.Duration) sender {
	d := mail.NewDialer(cfg.Server, cfg.Port, cfg.SenderEmail, cfg.SenderPassword)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.Timeout = timeout
	return d
}

// Send emails html to recipient with the given subject. The call is bounded
// by the configured timeout or the context deadline, whichever is sooner.
func (m *Mailer) Send(ctx context.Context, recipient, html, subject string) error {
	if err := m.validate.Var(recipient, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := m.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	msg := m.compose(recipient, html, subject)
	if err := m.dial(m.cfg, timeout).DialAndSend(msg); err != nil {
		return fmt.Errorf("sending to %s via %s:%d: %w", recipient, m.cfg.Server, m.cfg.Port, err)
	}
	return nil
}

func (m *Mailer) compose(recipient, html, subject string) *mail.Message {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.cfg.SenderEmail)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return msg
}

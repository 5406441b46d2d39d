// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"

	"github.com/pdiddy/meeting-report/pkg/types"
)

// fakeSender records submitted messages and returns err.
type fakeSender struct {
	sent []*mail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*mail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func validConfig() types.SMTPConfig {
	return types.SMTPConfig{
		Server:         "smtp.example.com",
		Port:           587,
		SenderEmail:    "reports@example.com",
		SenderPassword: "hunter2",
	}
}

func newTestMailer(t *testing.T, fake *fakeSender) (*Mailer, *time.Duration) {
	t.Helper()
	m, err := New(validConfig())
	require.NoError(t, err)
	var gotTimeout time.Duration
	m.dial = func(cfg types.SMTPConfig, timeout time.Duration) sender {
		gotTimeout = timeout
		return fake
	}
	return m, &gotTimeout
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.SMTPConfig)
		errMsg string
	}{
		{"valid", func(*types.SMTPConfig) {}, ""},
		{"ip server", func(c *types.SMTPConfig) { c.Server = "127.0.0.1" }, ""},
		{"missing server", func(c *types.SMTPConfig) { c.Server = "" }, "Server"},
		{"bad port", func(c *types.SMTPConfig) { c.Port = 70000 }, "Port"},
		{"bad sender", func(c *types.SMTPConfig) { c.SenderEmail = "not-an-address" }, "SenderEmail"},
		{"missing password", func(c *types.SMTPConfig) { c.SenderPassword = "" }, "SenderPassword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			m, err := New(cfg)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultTimeout, m.cfg.Timeout)
		})
	}
}

func TestSend_ComposesHTMLMessage(t *testing.T) {
	fake := &fakeSender{}
	m, timeout := newTestMailer(t, fake)

	err := m.Send(context.Background(), "lead@example.com", "<p>hello</p>", "Meeting Summary - 2025-02-08")
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"reports@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"lead@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Meeting Summary - 2025-02-08"}, msg.GetHeader("Subject"))
	assert.Equal(t, DefaultTimeout, *timeout)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/html")
	assert.Contains(t, buf.String(), "<p>hello</p>")
}

func TestSend_InvalidRecipient(t *testing.T) {
	fake := &fakeSender{}
	m, _ := newTestMailer(t, fake)

	for _, to := range []string{"", "nobody", "a@"} {
		err := m.Send(context.Background(), to, "<p/>", "s")
		assert.ErrorIs(t, err, ErrInvalidRecipient, "recipient %q", to)
	}
	assert.Empty(t, fake.sent)
}

func TestSend_TransportError(t *testing.T) {
	fake := &fakeSender{err: errors.New("535 authentication failed")}
	m, _ := newTestMailer(t, fake)

	err := m.Send(context.Background(), "lead@example.com", "<p/>", "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "535 authentication failed")
	assert.Contains(t, err.Error(), "smtp.example.com:587")
}

func TestSend_ContextDeadlineShortensTimeout(t *testing.T) {
	fake := &fakeSender{}
	m, timeout := newTestMailer(t, fake)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, m.Send(ctx, "lead@example.com", "<p/>", "s"))
	assert.LessOrEqual(t, *timeout, 2*time.Second)
	assert.Greater(t, *timeout, time.Duration(0))
}

func TestSend_CancelledContext(t *testing.T) {
	fake := &fakeSender{}
	m, _ := newTestMailer(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "lead@example.com", "<p/>", "s")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.sent)
}

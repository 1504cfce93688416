package mail

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/cyprus-transfer/internal/config"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func configuredSMTP() *config.SMTPConfig {
	return &config.SMTPConfig{
		Host:      "smtp.example.com",
		Port:      465,
		Secure:    true,
		User:      "info@example.com",
		Password:  "secret",
		Recipient: "office@example.com",
	}
}

func newTestMailer(cfg *config.SMTPConfig, s sender) *mailer {
	m := NewMailer(cfg, zap.NewNop()).(*mailer)
	m.dialer = s
	return m
}

func TestMailer_Send(t *testing.T) {
	fake := &fakeSender{}
	m := newTestMailer(configuredSMTP(), fake)

	err := m.Send(context.Background(), &domain.MailMessage{
		To:       []string{m.DefaultRecipient()},
		ReplyTo:  "guest@example.com",
		Subject:  "Question",
		TextBody: "Hello",
		HTMLBody: "<p>Hello</p>",
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"office@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"info@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"guest@example.com"}, msg.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
	assert.Contains(t, buf.String(), "text/plain")
}

func TestMailer_NotConfigured(t *testing.T) {
	fake := &fakeSender{}
	m := newTestMailer(&config.SMTPConfig{Host: "smtp.example.com", Port: 587}, fake)

	assert.False(t, m.Configured())
	err := m.Send(context.Background(), &domain.MailMessage{To: []string{"a@example.com"}})
	assert.Equal(t, errors.ErrMailNotConfigured, err)
	assert.Empty(t, fake.sent)
}

func TestMailer_TransportFailure(t *testing.T) {
	m := newTestMailer(configuredSMTP(), &fakeSender{err: stderrors.New("535 authentication failed")})

	err := m.Send(context.Background(), &domain.MailMessage{To: []string{"a@example.com"}, Subject: "x"})
	assert.Equal(t, errors.ErrMailSendFailed, err)
}

func TestMailer_DefaultRecipientFallsBackToUser(t *testing.T) {
	cfg := configuredSMTP()
	cfg.Recipient = ""
	m := newTestMailer(cfg, &fakeSender{})

	assert.Equal(t, "info@example.com", m.DefaultRecipient())
}

package mail

import (
	"context"

	"github.com/cyprus-transfer/internal/config"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// sender - отправка готового сообщения; в тестах подменяется
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type mailer struct {
	cfg    config.SMTPConfig
	dialer sender
	logger *zap.Logger
}

// NewMailer - SMTP транспорт; без учётных данных Configured() == false
func NewMailer(cfg *config.SMTPConfig, logger *zap.Logger) repository.MailRepository {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Secure

	return &mailer{
		cfg:    *cfg,
		dialer: d,
		logger: logger,
	}
}

func (m *mailer) Configured() bool {
	return m.cfg.Configured()
}

func (m *mailer) DefaultRecipient() string {
	if m.cfg.Recipient != "" {
		return m.cfg.Recipient
	}
	return m.cfg.User
}

// Send отправляет одно письмо синхронно, без повторов
func (m *mailer) Send(ctx context.Context, msg *domain.MailMessage) error {
	if !m.Configured() {
		return errors.ErrMailNotConfigured
	}
	if len(msg.To) == 0 {
		return errors.ErrMailSendFailed.WithMessage("Mail has no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		gm.AddAlternative("text/html", msg.HTMLBody)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		m.logger.Error("Failed to send mail",
			zap.String("host", m.cfg.Host),
			zap.Int("port", m.cfg.Port),
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err))
		return errors.ErrMailSendFailed
	}

	m.logger.Info("Mail sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

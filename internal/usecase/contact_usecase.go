package usecase

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"go.uber.org/zap"
)

const contactSuccessMessage = "Your message has been sent. We will get back to you shortly."

// ContactUseCase - отправка сообщений с формы обратной связи
type ContactUseCase struct {
	mailRepo repository.MailRepository
	logger   *zap.Logger
}

func NewContactUseCase(mailRepo repository.MailRepository, logger *zap.Logger) *ContactUseCase {
	return &ContactUseCase{
		mailRepo: mailRepo,
		logger:   logger,
	}
}

// Send: ввод -> 400, нет SMTP -> 500, одна синхронная отправка без повторов
func (uc *ContactUseCase) Send(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	req.Normalize()
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	if !uc.mailRepo.Configured() {
		uc.logger.Error("Contact form submitted but SMTP is not configured")
		return nil, errors.ErrMailNotConfigured
	}

	msg := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	html, text, err := renderBodies(contactHTMLTmpl, contactTextTmpl, msg)
	if err != nil {
		uc.logger.Error("Failed to render contact mail", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	err = uc.mailRepo.Send(ctx, &domain.MailMessage{
		To:       []string{uc.mailRepo.DefaultRecipient()},
		ReplyTo:  msg.Email,
		Subject:  "Contact form: " + msg.Subject,
		HTMLBody: html,
		TextBody: text,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Contact message sent", zap.String("subject", msg.Subject))
	return &dto.ContactResponse{Success: true, Message: contactSuccessMessage}, nil
}

// Status - health check почтового транспорта
func (uc *ContactUseCase) Status() *dto.ContactStatusResponse {
	return &dto.ContactStatusResponse{
		Status:     "ok",
		Configured: uc.mailRepo.Configured(),
	}
}

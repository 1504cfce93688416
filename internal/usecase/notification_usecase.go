package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"go.uber.org/zap"
)

// NotificationUseCase - письма клиентам по событиям бронирования
type NotificationUseCase struct {
	mailRepo  repository.MailRepository
	logger    *zap.Logger
	publicURL string
}

func NewNotificationUseCase(mailRepo repository.MailRepository, logger *zap.Logger, publicURL string) *NotificationUseCase {
	return &NotificationUseCase{
		mailRepo:  mailRepo,
		logger:    logger,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// confirmationData - данные шаблона подтверждения
type confirmationData struct {
	*domain.ReservationCreatedEvent
	LookupURL string
}

// SendReservationConfirmation отправляет подтверждение; событие без адреса пропускается
func (uc *NotificationUseCase) SendReservationConfirmation(ctx context.Context, event *domain.ReservationCreatedEvent) error {
	if !event.HasRecipient() {
		uc.logger.Debug("Reservation has no e-mail, confirmation skipped", zap.String("code", event.Code))
		return nil
	}
	if !uc.mailRepo.Configured() {
		return errors.ErrMailNotConfigured
	}

	data := confirmationData{
		ReservationCreatedEvent: event,
		LookupURL:               uc.publicURL + "/reservation?code=" + url.QueryEscape(event.Code),
	}

	html, text, err := renderBodies(confirmationHTMLTmpl, confirmationTextTmpl, data)
	if err != nil {
		uc.logger.Error("Failed to render confirmation mail", zap.String("code", event.Code), zap.Error(err))
		return errors.ErrInternalServer
	}

	return uc.mailRepo.Send(ctx, &domain.MailMessage{
		To:       []string{event.CustomerEmail},
		ReplyTo:  uc.mailRepo.DefaultRecipient(),
		Subject:  "Reservation " + event.Code + " received",
		HTMLBody: html,
		TextBody: text,
	})
}

package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// MailRepository - почтовый транспорт
type MailRepository interface {
	// Configured - заданы ли учётные данные транспорта
	Configured() bool

	// Send отправляет одно письмо синхронно, без повторов
	Send(ctx context.Context, msg *domain.MailMessage) error

	// DefaultRecipient - адрес, на который приходят сообщения с сайта
	DefaultRecipient() string
}

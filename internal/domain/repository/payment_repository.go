package repository

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
)

// PaymentRepository - удалённая функция payment-process платёжного шлюза
type PaymentRepository interface {
	// ProcessPayment передаёт данные заказа и карты и возвращает адрес и поля формы оплаты
	ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentResult, error)

	// ProcessPaymentRaw отправляет произвольное тело и возвращает сырой JSON ответа
	ProcessPaymentRaw(ctx context.Context, payload interface{}) ([]byte, int, error)
}

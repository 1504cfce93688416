package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"go.uber.org/zap"
)

// paymentFunctionPath - удалённая функция, передающая платёж шлюзу
const paymentFunctionPath = "/functions/v1/payment-process"

type paymentRepository struct {
	client *Client
}

func NewPaymentRepository(client *Client) repository.PaymentRepository {
	return &paymentRepository{client: client}
}

// ProcessPayment вызывает payment-process; данные карты не логируются
func (r *paymentRepository) ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentResult, error) {
	data, status, err := r.client.do(ctx, http.MethodPost, paymentFunctionPath, req)
	if err != nil {
		return nil, errors.ErrBackendUnavailable
	}

	if status != http.StatusOK {
		r.client.logger.Error("Payment function failed",
			zap.String("order_id", req.Order.OrderID),
			zap.String("reservation_code", req.Order.Code),
			zap.Int("status_code", status))
		return nil, errors.ErrPaymentFailed
	}

	var result domain.PaymentResult
	if err := json.Unmarshal(data, &result); err != nil || result.RedirectURL == "" {
		r.client.logger.Error("Invalid payment function response",
			zap.String("order_id", req.Order.OrderID),
			zap.Error(err))
		return nil, errors.ErrPaymentFailed
	}

	r.client.logger.Info("Payment form prepared",
		zap.String("order_id", req.Order.OrderID),
		zap.String("reservation_code", req.Order.Code),
		zap.Int("form_fields", len(result.FormFields)))

	return &result, nil
}

// ProcessPaymentRaw отправляет тело как есть и возвращает сырой ответ
func (r *paymentRepository) ProcessPaymentRaw(ctx context.Context, payload interface{}) ([]byte, int, error) {
	data, status, err := r.client.do(ctx, http.MethodPost, paymentFunctionPath, payload)
	if err != nil {
		return nil, 0, errors.ErrBackendUnavailable
	}
	return data, status, nil
}

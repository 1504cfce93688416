package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentUseCase - оплата бронирования через функцию payment-process
type PaymentUseCase struct {
	reservationRepo repository.ReservationRepository
	paymentRepo     repository.PaymentRepository
	logger          *zap.Logger
	publicURL       string
}

func NewPaymentUseCase(
	reservationRepo repository.ReservationRepository,
	paymentRepo repository.PaymentRepository,
	logger *zap.Logger,
	publicURL string,
) *PaymentUseCase {
	return &PaymentUseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
		publicURL:       strings.TrimRight(publicURL, "/"),
	}
}

// Prepare передаёт заказ и карту в функцию и возвращает форму перехода на шлюз
func (uc *PaymentUseCase) Prepare(ctx context.Context, code string, req dto.PaymentRequest, clientIP string) (*domain.PaymentResult, error) {
	code = NormalizeReservationCode(code)
	if code == "" {
		return nil, errors.ErrInvalidReservationCode
	}

	req.Normalize()
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	detail, err := uc.reservationRepo.GetDetailByCode(ctx, code)
	if stderrors.Is(err, errors.ErrReservationNotFound) {
		return nil, errors.ErrReservationNotFound.WithMessage(
			fmt.Sprintf("Reservation with code %s not found", code))
	}
	if err != nil {
		return nil, err
	}

	switch {
	case detail.Status == domain.ReservationStatusPaid:
		return nil, errors.ErrInvalidStatusTransition.WithMessage("Reservation is already paid")
	case detail.Status.Final():
		return nil, errors.ErrInvalidStatusTransition.WithMessage(
			fmt.Sprintf("Reservation in status %s cannot be paid", detail.Status))
	}

	installment := req.Installment
	if installment == 0 {
		installment = 1
	}

	payment := &domain.PaymentRequest{
		Order: domain.PaymentOrder{
			OrderID:        uuid.NewString(),
			ReservationID:  detail.ID,
			Code:           detail.Code,
			Amount:         detail.TotalPrice,
			Currency:       detail.Currency,
			Description:    "Transfer reservation " + detail.Code,
			InstallmentCnt: installment,
		},
		Card: domain.PaymentCard{
			HolderName:  req.CardHolderName,
			Number:      req.CardNumber,
			ExpireMonth: req.ExpireMonth,
			ExpireYear:  req.ExpireYear,
			CVC:         req.CVC,
		},
		User: domain.PaymentUser{
			Name:    detail.CustomerName,
			Email:   detail.CustomerEmail,
			Phone:   detail.CustomerPhone,
			IP:      clientIP,
			Address: req.Address,
		},
		Redirects: domain.PaymentRedirects{
			SuccessURL: uc.publicURL + "/booking/payment/success?code=" + url.QueryEscape(detail.Code),
			FailURL:    uc.publicURL + "/booking/payment/fail?code=" + url.QueryEscape(detail.Code),
		},
	}

	result, err := uc.paymentRepo.ProcessPayment(ctx, payment)
	if err != nil {
		uc.logger.Warn("Payment initialisation failed",
			zap.String("code", detail.Code),
			zap.String("order_id", payment.Order.OrderID),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Payment initialised",
		zap.String("code", detail.Code),
		zap.String("order_id", payment.Order.OrderID))
	return result, nil
}

// TestHarness отправляет фиксированный тестовый заказ и возвращает сырой ответ функции
func (uc *PaymentUseCase) TestHarness(ctx context.Context) (*dto.PaymentTestResponse, error) {
	payload := domain.PaymentRequest{
		Order: domain.PaymentOrder{
			OrderID:        "test-" + uuid.NewString(),
			Code:           "CT-TEST0001",
			Amount:         1,
			Currency:       "EUR",
			Description:    "Payment function test",
			InstallmentCnt: 1,
		},
		Card: domain.PaymentCard{
			HolderName:  "John Doe",
			Number:      "5528790000000008",
			ExpireMonth: "12",
			ExpireYear:  "2030",
			CVC:         "123",
		},
		User: domain.PaymentUser{
			Name:  "John Doe",
			Email: "test@example.com",
			Phone: "+35700000000",
			IP:    "127.0.0.1",
		},
		Redirects: domain.PaymentRedirects{
			SuccessURL: uc.publicURL + "/booking/payment/success",
			FailURL:    uc.publicURL + "/booking/payment/fail",
		},
	}

	body, status, err := uc.paymentRepo.ProcessPaymentRaw(ctx, payload)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentTestResponse{StatusCode: status, Body: string(body)}, nil
}

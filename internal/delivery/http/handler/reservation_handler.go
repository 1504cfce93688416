package handler

import (
	"fmt"

	"github.com/cyprus-transfer/internal/infrastructure/pdf"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReservationHandler - бронирования: поиск по коду, создание, ваучер, оплата
type ReservationHandler struct {
	reservationUC *usecase.ReservationUseCase
	paymentUC     *usecase.PaymentUseCase
	voucher       *pdf.VoucherRenderer
	logger        *zap.Logger
}

// NewReservationHandler - создание нового ReservationHandler
func NewReservationHandler(
	reservationUC *usecase.ReservationUseCase,
	paymentUC *usecase.PaymentUseCase,
	voucher *pdf.VoucherRenderer,
	logger *zap.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: reservationUC,
		paymentUC:     paymentUC,
		voucher:       voucher,
		logger:        logger,
	}
}

// GetByCode godoc
// @Summary Бронирование по коду
// @Description Возвращает бронирование вместе с локациями посадки/высадки и автомобилем
// @Tags Reservations
// @Produce json
// @Param code path string true "Код бронирования (CT-XXXXXXXX)"
// @Success 200 {object} utils.SuccessResponse{data=domain.ReservationDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reservations/{code} [get]
func (h *ReservationHandler) GetByCode(c *fiber.Ctx) error {
	detail, err := h.reservationUC.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, nil)
}

// Create godoc
// @Summary Создание бронирования
// @Description Пересчитывает цену выбранного варианта, сохраняет бронирование со статусом pending и ставит письмо-подтверждение в очередь
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Данные бронирования"
// @Success 201 {object} utils.SuccessResponse{data=domain.Reservation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	reservation, err := h.reservationUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, reservation)
}

// Voucher godoc
// @Summary Ваучер бронирования
// @Tags Reservations
// @Produce application/pdf
// @Param code path string true "Код бронирования"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reservations/{code}/voucher.pdf [get]
func (h *ReservationHandler) Voucher(c *fiber.Ctx) error {
	detail, err := h.reservationUC.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}

	body, err := h.voucher.Render(detail)
	if err != nil {
		h.logger.Error("Failed to render voucher", zap.String("code", detail.Code), zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="voucher-%s.pdf"`, detail.Code))
	return c.Send(body)
}

// Pay godoc
// @Summary Подготовка оплаты
// @Description Передаёт заказ и данные карты платёжной функции и возвращает адрес и поля формы 3-D Secure
// @Tags Reservations
// @Accept json
// @Produce json
// @Param code path string true "Код бронирования"
// @Param request body dto.PaymentRequest true "Данные карты"
// @Success 200 {object} utils.SuccessResponse{data=domain.PaymentResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reservations/{code}/payment [post]
func (h *ReservationHandler) Pay(c *fiber.Ctx) error {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.paymentUC.Prepare(c.UserContext(), c.Params("code"), req, c.IP())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

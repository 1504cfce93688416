package handler

import (
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TransferHandler - поиск вариантов трансфера
type TransferHandler struct {
	transferUC *usecase.TransferUseCase
	logger     *zap.Logger
}

// NewTransferHandler - создание нового TransferHandler
func NewTransferHandler(transferUC *usecase.TransferUseCase, logger *zap.Logger) *TransferHandler {
	return &TransferHandler{
		transferUC: transferUC,
		logger:     logger,
	}
}

// Search godoc
// @Summary Поиск трансфера
// @Description Возвращает варианты private/shared для маршрута по сохранённым тарифам, с оценкой расстояния и времени в пути
// @Tags Transfers
// @Produce json
// @Param pickup_id query int true "ID локации посадки"
// @Param dropoff_id query int true "ID локации высадки"
// @Param date query string true "Дата трансфера (2006-01-02 или 2006-01-02T15:04)"
// @Param passengers query int true "Количество пассажиров (1-50)"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransferSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/transfers/search [get]
func (h *TransferHandler) Search(c *fiber.Ctx) error {
	var req dto.TransferSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.transferUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Options)})
}

package handler

import (
	"strconv"

	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocationHandler - публичный список локаций
type LocationHandler struct {
	locationUC   *usecase.LocationUseCase
	defaultLimit int
	logger       *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, defaultLimit int, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC:   locationUC,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// List godoc
// @Summary Список локаций
// @Description Возвращает активные локации (аэропорты, отели) для формы бронирования
// @Tags Locations
// @Produce json
// @Param limit query int false "Максимальное количество записей" default(1000)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.LocationSummary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidLimit)
		}
		limit = n
	}

	locations, err := h.locationUC.ListActive(c.UserContext(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, locations, &utils.Meta{
		Total: len(locations),
		Limit: limit,
	})
}

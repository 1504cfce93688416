package handler

import (
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContactHandler - форма обратной связи
type ContactHandler struct {
	contactUC *usecase.ContactUseCase
	logger    *zap.Logger
}

// NewContactHandler - создание нового ContactHandler
func NewContactHandler(contactUC *usecase.ContactUseCase, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactUC: contactUC,
		logger:    logger,
	}
}

// Send godoc
// @Summary Отправка сообщения
// @Description Отправляет сообщение с формы обратной связи на почту компании
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Сообщение"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.contactUC.Send(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// Status godoc
// @Summary Состояние почтового транспорта
// @Tags Contact
// @Produce json
// @Success 200 {object} dto.ContactStatusResponse
// @Router /api/contact [get]
func (h *ContactHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.contactUC.Status())
}

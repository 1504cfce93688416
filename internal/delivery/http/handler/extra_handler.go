package handler

import (
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExtraHandler - дополнительные услуги
type ExtraHandler struct {
	extraUC *usecase.ExtraUseCase
	logger  *zap.Logger
}

func NewExtraHandler(extraUC *usecase.ExtraUseCase, logger *zap.Logger) *ExtraHandler {
	return &ExtraHandler{
		extraUC: extraUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Список доп. услуг
// @Tags Extras
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Extra}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/extras [get]
func (h *ExtraHandler) List(c *fiber.Ctx) error {
	extras, err := h.extraUC.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, extras, &utils.Meta{Total: len(extras)})
}

package handler

import (
	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const locationsPath = "/admin/locations"

// AdminLocationHandler - управление локациями с выбором точки на карте
type AdminLocationHandler struct {
	renderer   *view.Renderer
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewAdminLocationHandler - создание нового AdminLocationHandler
func NewAdminLocationHandler(renderer *view.Renderer, locationUC *usecase.LocationUseCase, logger *zap.Logger) *AdminLocationHandler {
	return &AdminLocationHandler{
		renderer:   renderer,
		locationUC: locationUC,
		logger:     logger,
	}
}

func (h *AdminLocationHandler) List(c *fiber.Ctx) error {
	result, err := h.locationUC.List(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return renderAdminError(h.renderer, c, err)
	}
	return h.renderer.Render(c, fiber.StatusOK, "admin/locations", adminPage(c, "Locations", "locations", result))
}

func (h *AdminLocationHandler) New(c *fiber.Ctx) error {
	form := dto.LocationForm{Type: "hotel", IsActive: true}
	return h.renderForm(c, fiber.StatusOK, newLocationFormView(0, form), "")
}

func (h *AdminLocationHandler) Create(c *fiber.Ctx) error {
	var form dto.LocationForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, newLocationFormView(0, form), errors.ErrInvalidRequest.Message)
	}

	if _, err := h.locationUC.Create(c.UserContext(), form); err != nil {
		return h.renderForm(c, errorStatus(err), newLocationFormView(0, form), errorText(err))
	}
	return c.Redirect(locationsPath+"?flash=saved", fiber.StatusSeeOther)
}

// Edit - форма с картой, центрированной на сохранённой точке
func (h *AdminLocationHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	loc, err := h.locationUC.Get(c.UserContext(), int64(id))
	if err != nil {
		return renderAdminError(h.renderer, c, err)
	}
	return h.renderForm(c, fiber.StatusOK, newLocationFormView(loc.ID, locationToForm(loc)), "")
}

func (h *AdminLocationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	var form dto.LocationForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, newLocationFormView(int64(id), form), errors.ErrInvalidRequest.Message)
	}

	if _, err := h.locationUC.Update(c.UserContext(), int64(id), form); err != nil {
		return h.renderForm(c, errorStatus(err), newLocationFormView(int64(id), form), errorText(err))
	}
	return c.Redirect(locationsPath+"?flash=saved", fiber.StatusSeeOther)
}

func (h *AdminLocationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	if err := h.locationUC.Delete(c.UserContext(), int64(id)); err != nil {
		h.logger.Warn("Location not deleted", zap.Int("id", id), zap.Error(err))
		return c.Redirect(locationsPath+"?error="+flashKey(err), fiber.StatusSeeOther)
	}
	return c.Redirect(locationsPath+"?flash=deleted", fiber.StatusSeeOther)
}

func (h *AdminLocationHandler) renderForm(c *fiber.Ctx, status int, data LocationFormView, errMsg string) error {
	title := "New location"
	if data.ID > 0 {
		title = "Edit location"
	}
	page := adminPage(c, title, "locations", data)
	page.Error = errMsg
	return h.renderer.Render(c, status, "admin/location_form", page)
}

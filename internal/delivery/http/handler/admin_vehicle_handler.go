package handler

import (
	"strconv"

	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const vehiclesPath = "/admin/vehicles"

// AdminVehicleHandler - управление автопарком
type AdminVehicleHandler struct {
	renderer  *view.Renderer
	vehicleUC *usecase.VehicleUseCase
	logger    *zap.Logger
}

func NewAdminVehicleHandler(renderer *view.Renderer, vehicleUC *usecase.VehicleUseCase, logger *zap.Logger) *AdminVehicleHandler {
	return &AdminVehicleHandler{
		renderer:  renderer,
		vehicleUC: vehicleUC,
		logger:    logger,
	}
}

func (h *AdminVehicleHandler) List(c *fiber.Ctx) error {
	vehicles, err := h.vehicleUC.List(c.UserContext())
	if err != nil {
		return renderAdminError(h.renderer, c, err)
	}
	return h.renderer.Render(c, fiber.StatusOK, "admin/vehicles", adminPage(c, "Vehicles", "vehicles", vehicles))
}

func (h *AdminVehicleHandler) New(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, VehicleFormView{Form: dto.VehicleForm{Capacity: 4}}, "")
}

func (h *AdminVehicleHandler) Create(c *fiber.Ctx) error {
	var form dto.VehicleForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, VehicleFormView{Form: form}, errors.ErrInvalidRequest.Message)
	}

	if _, err := h.vehicleUC.Create(c.UserContext(), form); err != nil {
		return h.renderForm(c, errorStatus(err), VehicleFormView{Form: form}, errorText(err))
	}
	return c.Redirect(vehiclesPath+"?flash=saved", fiber.StatusSeeOther)
}

func (h *AdminVehicleHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	vehicle, err := h.vehicleUC.Get(c.UserContext(), int64(id))
	if err != nil {
		return renderAdminError(h.renderer, c, err)
	}
	return h.renderForm(c, fiber.StatusOK, VehicleFormView{ID: vehicle.ID, Form: vehicleToForm(vehicle)}, "")
}

func (h *AdminVehicleHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	var form dto.VehicleForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderForm(c, fiber.StatusBadRequest, VehicleFormView{ID: int64(id), Form: form}, errors.ErrInvalidRequest.Message)
	}

	if _, err := h.vehicleUC.Update(c.UserContext(), int64(id), form); err != nil {
		return h.renderForm(c, errorStatus(err), VehicleFormView{ID: int64(id), Form: form}, errorText(err))
	}
	return c.Redirect(vehiclesPath+"?flash=saved", fiber.StatusSeeOther)
}

// Delete - автомобиль с тарифами или бронированиями не удаляется
func (h *AdminVehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	if err := h.vehicleUC.Delete(c.UserContext(), int64(id)); err != nil {
		h.logger.Warn("Vehicle not deleted", zap.Int("id", id), zap.Error(err))
		return c.Redirect(vehiclesPath+"?error="+flashKey(err), fiber.StatusSeeOther)
	}
	return c.Redirect(vehiclesPath+"?flash=deleted", fiber.StatusSeeOther)
}

func (h *AdminVehicleHandler) renderForm(c *fiber.Ctx, status int, data VehicleFormView, errMsg string) error {
	title := "New vehicle"
	if data.ID > 0 {
		title = "Vehicle #" + strconv.FormatInt(data.ID, 10)
	}
	page := adminPage(c, title, "vehicles", data)
	page.Error = errMsg
	return h.renderer.Render(c, status, "admin/vehicle_form", page)
}

package handler

import (
	stderrors "errors"

	"github.com/cyprus-transfer/internal/delivery/http/middleware"
	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/pagination"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const adminHome = "/admin/reservations"

// AdminHandler - вход администратора и бронирования
type AdminHandler struct {
	renderer      *view.Renderer
	authUC        *usecase.AuthUseCase
	reservationUC *usecase.ReservationUseCase
	secureCookie  bool
	logger        *zap.Logger
}

// NewAdminHandler - создание нового AdminHandler
func NewAdminHandler(
	renderer *view.Renderer,
	authUC *usecase.AuthUseCase,
	reservationUC *usecase.ReservationUseCase,
	secureCookie bool,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		renderer:      renderer,
		authUC:        authUC,
		reservationUC: reservationUC,
		secureCookie:  secureCookie,
		logger:        logger,
	}
}

// LoginPage - форма входа
func (h *AdminHandler) LoginPage(c *fiber.Ctx) error {
	if _, err := h.authUC.ValidateToken(c.Cookies(middleware.AdminCookieName)); err == nil {
		return c.Redirect(adminHome, fiber.StatusSeeOther)
	}
	return h.renderer.Render(c, fiber.StatusOK, "admin/login", adminPage(c, "Sign in", "", dto.LoginRequest{}))
}

// Login - вход по email/паролю через hosted auth; токен сохраняется в HttpOnly cookie
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.loginFailed(c, req, errors.ErrInvalidRequest)
	}

	session, err := h.authUC.Login(c.UserContext(), req)
	if err != nil {
		return h.loginFailed(c, req, err)
	}

	middleware.SetAdminCookie(c, session.AccessToken, session.ExpiresAt, h.secureCookie)
	h.logger.Info("Admin signed in", zap.String("user_id", session.User.ID))

	return c.Redirect(adminHome, fiber.StatusSeeOther)
}

func (h *AdminHandler) loginFailed(c *fiber.Ctx, req dto.LoginRequest, err error) error {
	req.Password = ""
	page := adminPage(c, "Sign in", "", req)
	page.Error = errorText(err)
	return h.renderer.Render(c, errorStatus(err), "admin/login", page)
}

// Logout завершает сессию в hosted auth и удаляет cookie
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	h.authUC.Logout(c.UserContext(), c.Cookies(middleware.AdminCookieName))
	middleware.ClearAdminCookie(c, h.secureCookie)
	return c.Redirect("/admin/login", fiber.StatusSeeOther)
}

func (h *AdminHandler) Index(c *fiber.Ctx) error {
	return c.Redirect(adminHome, fiber.StatusSeeOther)
}

// Reservations - список бронирований с фильтром по статусу
func (h *AdminHandler) Reservations(c *fiber.Ctx) error {
	status := c.Query("status")
	result, err := h.reservationUC.List(c.UserContext(), status, c.QueryInt("page", 1))
	if err != nil {
		page := adminPage(c, "Reservations", "reservations", &dto.ReservationPage{
			Status: status,
			Pager:  pagination.New(1, 1),
		})
		page.Error = errorText(err)
		return h.renderer.Render(c, errorStatus(err), "admin/reservations", page)
	}

	return h.renderer.Render(c, fiber.StatusOK, "admin/reservations",
		adminPage(c, "Reservations", "reservations", result))
}

// UpdateReservationStatus - смена статуса из списка
func (h *AdminHandler) UpdateReservationStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidID)
	}

	var form dto.ReservationStatusForm
	if err := c.BodyParser(&form); err != nil {
		return renderAdminError(h.renderer, c, errors.ErrInvalidRequest)
	}

	if err := h.reservationUC.UpdateStatus(c.UserContext(), int64(id), form); err != nil {
		h.logger.Warn("Reservation status not updated",
			zap.Int("id", id),
			zap.String("status", form.Status),
			zap.Error(err))
		return c.Redirect(adminHome+"?error="+flashKey(err), fiber.StatusSeeOther)
	}

	return c.Redirect(adminHome+"?flash=status", fiber.StatusSeeOther)
}

// renderAdminError - страница ошибки в админском layout
func renderAdminError(r *view.Renderer, c *fiber.Ctx, err error) error {
	page := adminPage(c, "Error", "", nil)
	page.Error = utils.ToAppError(err).Message
	return r.Render(c, errorStatus(err), "admin/error", page)
}

// flashKey - ключ сообщения об ошибке для редиректа на список
func flashKey(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrResourceInUse):
		return "in_use"
	case stderrors.Is(err, errors.ErrReservationNotFound),
		stderrors.Is(err, errors.ErrExpenseNotFound),
		stderrors.Is(err, errors.ErrVehicleNotFound),
		stderrors.Is(err, errors.ErrLocationNotFound):
		return "not_found"
	case stderrors.Is(err, errors.ErrInvalidStatusTransition),
		stderrors.Is(err, errors.ErrInvalidRequest):
		return "status"
	}
	return "unexpected"
}

// CSRFError - просроченный или отсутствующий CSRF-токен админской формы
func (h *AdminHandler) CSRFError(c *fiber.Ctx, err error) error {
	h.logger.Warn("CSRF check failed", zap.String("path", c.Path()), zap.Error(err))
	page := adminPage(c, "Error", "", nil)
	page.Error = "The form has expired, please reload the page and try again."
	return h.renderer.Render(c, fiber.StatusForbidden, "admin/error", page)
}

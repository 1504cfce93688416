package handler

import (
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PageHandler - публичные страницы сайта
type PageHandler struct {
	renderer      *view.Renderer
	locationUC    *usecase.LocationUseCase
	vehicleUC     *usecase.VehicleUseCase
	extraUC       *usecase.ExtraUseCase
	transferUC    *usecase.TransferUseCase
	reservationUC *usecase.ReservationUseCase
	paymentUC     *usecase.PaymentUseCase
	contactUC     *usecase.ContactUseCase
	locationLimit int
	logger        *zap.Logger
	now           func() time.Time
}

// NewPageHandler - создание нового PageHandler
func NewPageHandler(
	renderer *view.Renderer,
	locationUC *usecase.LocationUseCase,
	vehicleUC *usecase.VehicleUseCase,
	extraUC *usecase.ExtraUseCase,
	transferUC *usecase.TransferUseCase,
	reservationUC *usecase.ReservationUseCase,
	paymentUC *usecase.PaymentUseCase,
	contactUC *usecase.ContactUseCase,
	locationLimit int,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		renderer:      renderer,
		locationUC:    locationUC,
		vehicleUC:     vehicleUC,
		extraUC:       extraUC,
		transferUC:    transferUC,
		reservationUC: reservationUC,
		paymentUC:     paymentUC,
		contactUC:     contactUC,
		locationLimit: locationLimit,
		logger:        logger,
		now:           time.Now,
	}
}

func (h *PageHandler) render(c *fiber.Ctx, status int, name, title, active string, data interface{}, errMsg string) error {
	return h.renderer.Render(c, status, name, view.Page{
		Title:  title,
		Active: active,
		Error:  errMsg,
		Data:   data,
	})
}

// Home - главная страница
func (h *PageHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	data := HomeView{}

	vehicles, err := h.vehicleUC.List(ctx)
	if err != nil {
		h.logger.Warn("Home page: vehicles unavailable", zap.Error(err))
	}
	data.Vehicles = vehicles

	extras, err := h.extraUC.List(ctx)
	if err != nil {
		h.logger.Warn("Home page: extras unavailable", zap.Error(err))
	}
	data.Extras = extras

	return h.render(c, fiber.StatusOK, "pages/home", "", "home", data, "")
}

func (h *PageHandler) About(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "pages/about", "About us", "about", nil, "")
}

// Contact - форма обратной связи
func (h *PageHandler) Contact(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "pages/contact", "Contact", "contact", ContactView{}, "")
}

// ContactSubmit отправляет форму; при ошибке форма показывается снова с введёнными данными
func (h *PageHandler) ContactSubmit(c *fiber.Ctx) error {
	var form dto.ContactRequest
	if err := c.BodyParser(&form); err != nil {
		return h.render(c, fiber.StatusBadRequest, "pages/contact", "Contact", "contact",
			ContactView{Form: form}, errors.ErrInvalidRequest.Message)
	}

	result, err := h.contactUC.Send(c.UserContext(), form)
	if err != nil {
		return h.render(c, errorStatus(err), "pages/contact", "Contact", "contact",
			ContactView{Form: form}, errorText(err))
	}

	return h.renderer.Render(c, fiber.StatusOK, "pages/contact", view.Page{
		Title:  "Contact",
		Active: "contact",
		Flash:  result.Message,
		Data:   ContactView{},
	})
}

// Booking - форма поиска трансфера; поля можно предзаполнить query-параметрами
func (h *PageHandler) Booking(c *fiber.Ctx) error {
	var form dto.TransferSearchRequest
	_ = c.QueryParser(&form)
	return h.renderBooking(c, fiber.StatusOK, form, "")
}

func (h *PageHandler) renderBooking(c *fiber.Ctx, status int, form dto.TransferSearchRequest, errMsg string) error {
	locations, err := h.locationUC.ListActive(c.UserContext(), h.locationLimit)
	if err != nil {
		h.logger.Warn("Booking page: locations unavailable", zap.Error(err))
		if errMsg == "" {
			errMsg = "Locations could not be loaded, please try again later."
		}
	}
	if form.Passengers == 0 {
		form.Passengers = 1
	}

	return h.render(c, status, "pages/booking", "Book a transfer", "booking", BookingView{
		Locations: locations,
		Form:      form,
		MinDate:   h.now().Format("2006-01-02"),
	}, errMsg)
}

// BookingVehicles - варианты трансфера для маршрута
func (h *PageHandler) BookingVehicles(c *fiber.Ctx) error {
	var query dto.TransferSearchRequest
	if err := c.QueryParser(&query); err != nil {
		return h.renderBooking(c, fiber.StatusBadRequest, query, errors.ErrInvalidRequest.Message)
	}

	result, err := h.transferUC.Search(c.UserContext(), query)
	if err != nil {
		return h.renderBooking(c, errorStatus(err), query, errorText(err))
	}

	return h.render(c, fiber.StatusOK, "pages/booking_vehicles", "Choose a vehicle", "booking",
		BookingVehiclesView{Query: query, Result: result}, "")
}

type bookingSelection struct {
	PickupID     int64  `query:"pickup_id"`
	DropoffID    int64  `query:"dropoff_id"`
	Date         string `query:"date"`
	Passengers   int    `query:"passengers"`
	VehicleID    int64  `query:"vehicle_id"`
	TransferType string `query:"transfer_type"`
}

// BookingDetails - форма данных клиента для выбранного варианта
func (h *PageHandler) BookingDetails(c *fiber.Ctx) error {
	var sel bookingSelection
	if err := c.QueryParser(&sel); err != nil {
		return h.RenderError(c, errors.ErrInvalidRequest)
	}

	form := dto.CreateReservationRequest{
		PickupLocationID:  sel.PickupID,
		DropoffLocationID: sel.DropoffID,
		VehicleID:         sel.VehicleID,
		TransferType:      sel.TransferType,
		TransferDate:      sel.Date,
		PassengerCount:    sel.Passengers,
	}

	option, err := h.quote(c, form)
	if err != nil {
		return h.RenderError(c, err)
	}

	return h.renderDetails(c, fiber.StatusOK, form, option, "")
}

// BookingDetailsSubmit создаёт бронирование и ведёт на страницу оплаты
func (h *PageHandler) BookingDetailsSubmit(c *fiber.Ctx) error {
	var form dto.CreateReservationRequest
	if err := c.BodyParser(&form); err != nil {
		return h.RenderError(c, errors.ErrInvalidRequest)
	}

	reservation, err := h.reservationUC.Create(c.UserContext(), form)
	if err != nil {
		option, quoteErr := h.quote(c, form)
		if quoteErr != nil {
			return h.RenderError(c, err)
		}
		return h.renderDetails(c, errorStatus(err), form, option, errorText(err))
	}

	return c.Redirect("/booking/payment/"+reservation.Code, fiber.StatusSeeOther)
}

func (h *PageHandler) quote(c *fiber.Ctx, form dto.CreateReservationRequest) (*domain.TransferOption, error) {
	transferType := domain.TransferType(form.TransferType)
	if !transferType.Valid() || form.PassengerCount <= 0 {
		return nil, errors.ErrInvalidRequest
	}
	return h.transferUC.Quote(c.UserContext(),
		form.PickupLocationID, form.DropoffLocationID, form.VehicleID, transferType, form.PassengerCount)
}

func (h *PageHandler) renderDetails(
	c *fiber.Ctx,
	status int,
	form dto.CreateReservationRequest,
	option *domain.TransferOption,
	errMsg string,
) error {
	extras, err := h.extraUC.List(c.UserContext())
	if err != nil {
		h.logger.Warn("Booking details: extras unavailable", zap.Error(err))
	}

	selected := make(map[int64]bool, len(form.ExtraIDs))
	for _, id := range form.ExtraIDs {
		selected[id] = true
	}

	return h.render(c, status, "pages/booking_details", "Your details", "booking", BookingDetailsView{
		Form:     form,
		Option:   option,
		Extras:   extras,
		Selected: selected,
	}, errMsg)
}

// Payment - форма оплаты бронирования
func (h *PageHandler) Payment(c *fiber.Ctx) error {
	detail, err := h.reservationUC.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return h.RenderError(c, err)
	}
	return h.render(c, fiber.StatusOK, "pages/payment", "Payment", "booking", PaymentView{Reservation: detail}, "")
}

// PaymentSubmit готовит оплату и отдаёт страницу с автоотправкой формы 3-D Secure
func (h *PageHandler) PaymentSubmit(c *fiber.Ctx) error {
	ctx := c.UserContext()
	code := c.Params("code")

	var form dto.PaymentRequest
	if err := c.BodyParser(&form); err != nil {
		return h.RenderError(c, errors.ErrInvalidRequest)
	}

	result, err := h.paymentUC.Prepare(ctx, code, form, c.IP())
	if err != nil {
		detail, lookupErr := h.reservationUC.GetByCode(ctx, code)
		if lookupErr != nil {
			return h.RenderError(c, err)
		}
		return h.render(c, errorStatus(err), "pages/payment", "Payment", "booking",
			PaymentView{Reservation: detail}, errorText(err))
	}

	return h.render(c, fiber.StatusOK, "pages/payment_redirect", "Redirecting to your bank", "booking", result, "")
}

func (h *PageHandler) PaymentSuccess(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "pages/payment_result", "Payment received", "booking",
		PaymentResultView{Success: true, Code: c.Query("code")}, "")
}

func (h *PageHandler) PaymentFail(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "pages/payment_result", "Payment failed", "booking",
		PaymentResultView{Success: false, Code: c.Query("code")}, "")
}

// Reservation - поиск бронирования по коду
func (h *PageHandler) Reservation(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Query("code"))
	data := ReservationView{Code: code}
	if code == "" {
		return h.render(c, fiber.StatusOK, "pages/reservation", "My reservation", "reservation", data, "")
	}

	detail, err := h.reservationUC.GetByCode(c.UserContext(), code)
	if err != nil {
		return h.render(c, errorStatus(err), "pages/reservation", "My reservation", "reservation", data, errorText(err))
	}
	data.Reservation = detail

	return h.render(c, fiber.StatusOK, "pages/reservation", "My reservation", "reservation", data, "")
}

// PaymentTest - страница проверки платёжной функции
func (h *PageHandler) PaymentTest(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "pages/payment_test", "Payment test", "", (*dto.PaymentTestResponse)(nil), "")
}

// PaymentTestSubmit отправляет фиксированный тестовый платёж и показывает сырой ответ
func (h *PageHandler) PaymentTestSubmit(c *fiber.Ctx) error {
	result, err := h.paymentUC.TestHarness(c.UserContext())
	if err != nil {
		return h.render(c, errorStatus(err), "pages/payment_test", "Payment test", "",
			(*dto.PaymentTestResponse)(nil), errorText(err))
	}
	return h.render(c, fiber.StatusOK, "pages/payment_test", "Payment test", "", result, "")
}

// NotFound - 404 для неизвестных адресов
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	return h.renderer.Render(c, fiber.StatusNotFound, "pages/error", view.Page{Title: "Page not found"})
}

// RenderError - страница ошибки со статусом и сообщением AppError
func (h *PageHandler) RenderError(c *fiber.Ctx, err error) error {
	appErr := utils.ToAppError(err)
	if appErr.StatusCode >= fiber.StatusInternalServerError {
		h.logger.Error("Page request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return h.renderer.Render(c, appErr.StatusCode, "pages/error", view.Page{
		Title: "Error",
		Error: appErr.Message,
	})
}

package http

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/config"
	"github.com/cyprus-transfer/internal/delivery/http/handler"
	"github.com/cyprus-transfer/internal/delivery/http/middleware"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - обработчики HTTP сервера
type Handlers struct {
	Location      *handler.LocationHandler
	Extra         *handler.ExtraHandler
	Transfer      *handler.TransferHandler
	Reservation   *handler.ReservationHandler
	Contact       *handler.ContactHandler
	Health        *handler.HealthHandler
	Page          *handler.PageHandler
	Admin         *handler.AdminHandler
	AdminExpense  *handler.AdminExpenseHandler
	AdminVehicle  *handler.AdminVehicleHandler
	AdminLocation *handler.AdminLocationHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
	tokens   middleware.TokenValidator
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	tokens middleware.TokenValidator,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Cyprus Transfer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger, handlers.Page),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
		tokens:   tokens,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.BackendContext())
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api", middleware.CORS(s.config.Server.AllowedOrigin, s.config.Server.PublicURL))

	api.Get("/health", h.Health.Check)

	api.Get("/locations", h.Location.List)
	api.Get("/extras", h.Extra.List)
	api.Get("/transfers/search", h.Transfer.Search)

	// Reservation routes
	api.Post("/reservations", h.Reservation.Create)
	api.Get("/reservations/:code", h.Reservation.GetByCode)
	api.Get("/reservations/:code/voucher.pdf", h.Reservation.Voucher)
	api.Post("/reservations/:code/payment", h.Reservation.Pay)

	api.Post("/contact", h.Contact.Send)
	api.Get("/contact", h.Contact.Status)

	// Public pages
	s.app.Get("/", h.Page.Home)
	s.app.Get("/about", h.Page.About)
	s.app.Get("/contact", h.Page.Contact)
	s.app.Post("/contact", h.Page.ContactSubmit)
	s.app.Get("/booking", h.Page.Booking)
	s.app.Get("/booking/vehicles", h.Page.BookingVehicles)
	s.app.Get("/booking/details", h.Page.BookingDetails)
	s.app.Post("/booking/details", h.Page.BookingDetailsSubmit)
	s.app.Get("/booking/payment/success", h.Page.PaymentSuccess)
	s.app.Get("/booking/payment/fail", h.Page.PaymentFail)
	s.app.Get("/booking/payment/:code", h.Page.Payment)
	s.app.Post("/booking/payment/:code", h.Page.PaymentSubmit)
	s.app.Get("/reservation", h.Page.Reservation)
	s.app.Get("/payment-test", h.Page.PaymentTest)
	s.app.Post("/payment-test", h.Page.PaymentTestSubmit)

	// Admin: вход и выход доступны без сессии, но под CSRF
	admin := s.app.Group("/admin", middleware.CSRF(s.config.Server.CookieSecure, h.Admin.CSRFError))
	admin.Get("/login", h.Admin.LoginPage)
	admin.Post("/login", h.Admin.Login)
	admin.Post("/logout", h.Admin.Logout)

	admin.Use(middleware.AdminAuth(s.tokens, s.logger))
	admin.Get("/", h.Admin.Index)

	admin.Get("/reservations", h.Admin.Reservations)
	admin.Post("/reservations/:id/status", h.Admin.UpdateReservationStatus)

	admin.Get("/expenses", h.AdminExpense.List)
	admin.Get("/expenses/new", h.AdminExpense.New)
	admin.Post("/expenses", h.AdminExpense.Create)
	admin.Get("/expenses/:id", h.AdminExpense.Show)
	admin.Get("/expenses/:id/edit", h.AdminExpense.Edit)
	admin.Post("/expenses/:id", h.AdminExpense.Update)
	admin.Post("/expenses/:id/delete", h.AdminExpense.Delete)

	admin.Get("/vehicles", h.AdminVehicle.List)
	admin.Get("/vehicles/new", h.AdminVehicle.New)
	admin.Post("/vehicles", h.AdminVehicle.Create)
	admin.Get("/vehicles/:id/edit", h.AdminVehicle.Edit)
	admin.Post("/vehicles/:id", h.AdminVehicle.Update)
	admin.Post("/vehicles/:id/delete", h.AdminVehicle.Delete)

	admin.Get("/locations", h.AdminLocation.List)
	admin.Get("/locations/new", h.AdminLocation.New)
	admin.Post("/locations", h.AdminLocation.Create)
	admin.Get("/locations/:id/edit", h.AdminLocation.Edit)
	admin.Post("/locations/:id", h.AdminLocation.Update)
	admin.Post("/locations/:id/delete", h.AdminLocation.Delete)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в handler'ах: JSON для /api, страница ошибки для сайта
func customErrorHandler(logger *zap.Logger, pages *handler.PageHandler) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := fromFiberError(err)

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(appErr.StatusCode).JSON(utils.ErrorResponse{Error: appErr})
		}

		if renderErr := pages.RenderError(c, appErr); renderErr != nil {
			return c.Status(appErr.StatusCode).SendString(appErr.Message)
		}
		return nil
	}
}

func fromFiberError(err error) *errors.AppError {
	var fe *fiber.Error
	if !stderrors.As(err, &fe) {
		return utils.ToAppError(err)
	}

	switch fe.Code {
	case fiber.StatusNotFound:
		return errors.New("NOT_FOUND", "Resource not found", fe.Code)
	case fiber.StatusMethodNotAllowed:
		return errors.New("METHOD_NOT_ALLOWED", fe.Message, fe.Code)
	case fiber.StatusForbidden:
		return errors.New("FORBIDDEN", fe.Message, fe.Code)
	}
	if fe.Code < fiber.StatusInternalServerError {
		return errors.New("HTTP_ERROR", fe.Message, fe.Code)
	}
	return errors.ErrInternalServer
}

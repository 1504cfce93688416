package handler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cyprus-transfer/internal/delivery/http/middleware"
	"github.com/cyprus-transfer/internal/delivery/http/view"
	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/utils"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
)

// HomeView - главная: автомобили и доп. услуги
type HomeView struct {
	Vehicles []*domain.Vehicle
	Extras   []*domain.Extra
}

type ContactView struct {
	Form dto.ContactRequest
}

// BookingView - форма поиска трансфера
type BookingView struct {
	Locations []*domain.LocationSummary
	Form      dto.TransferSearchRequest
	MinDate   string
}

type BookingVehiclesView struct {
	Query  dto.TransferSearchRequest
	Result *dto.TransferSearchResponse
}

// BookingDetailsView - форма данных клиента для выбранного варианта
type BookingDetailsView struct {
	Form     dto.CreateReservationRequest
	Option   *domain.TransferOption
	Extras   []*domain.Extra
	Selected map[int64]bool
}

type PaymentView struct {
	Reservation *domain.ReservationDetail
}

type PaymentResultView struct {
	Success bool
	Code    string
}

// ReservationView - поиск бронирования по коду и результат
type ReservationView struct {
	Code        string
	Reservation *domain.ReservationDetail
}

type VehicleFormView struct {
	ID   int64
	Form dto.VehicleForm
}

// LocationFormView - форма локации с центром карты.
// HasPoint - в форме заданы обе координаты в допустимом диапазоне.
type LocationFormView struct {
	ID       int64
	Form     dto.LocationForm
	MapLat   float64
	MapLon   float64
	HasPoint bool
}

// ExpenseFormView - форма расхода; Lines всегда содержит хотя бы одну пустую строку
type ExpenseFormView struct {
	ID      int64
	Form    dto.ExpenseForm
	Lines   []ExpenseLineView
	Options *dto.ExpenseFormOptions
}

type ExpenseLineView struct {
	TypeID int64
	Amount string
}

var flashMessages = map[string]string{
	"saved":   "Changes saved.",
	"deleted": "Record deleted.",
	"status":  "Reservation status updated.",
}

var flashErrors = map[string]string{
	"in_use":     "The record is referenced by other data and cannot be deleted.",
	"status":     "Reservation status could not be changed.",
	"not_found":  "The record no longer exists.",
	"unexpected": "Something went wrong, please try again.",
}

// adminPage - данные админской страницы: CSRF, текущий администратор, flash из query
func adminPage(c *fiber.Ctx, title, active string, data interface{}) view.Page {
	page := view.Page{
		Title:  title,
		Active: active,
		CSRF:   middleware.CSRFToken(c),
		Flash:  flashMessages[c.Query("flash")],
		Error:  flashErrors[c.Query("error")],
		Data:   data,
	}
	if claims := middleware.AdminClaims(c); claims != nil {
		page.Admin = claims.Email
	}
	return page
}

// errorText - сообщение ошибки для баннера формы, с перечнем неверных полей
func errorText(err error) string {
	appErr := utils.ToAppError(err)
	fields, ok := appErr.Details["fields"].(map[string]interface{})
	if !ok || len(fields) == 0 {
		return appErr.Message
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return appErr.Message + ": " + strings.Join(names, ", ")
}

func errorStatus(err error) int {
	return utils.ToAppError(err).StatusCode
}

func newLocationFormView(id int64, form dto.LocationForm) LocationFormView {
	v := LocationFormView{
		ID:     id,
		Form:   form,
		MapLat: view.DefaultMapLat,
		MapLon: view.DefaultMapLon,
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(form.Latitude), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(form.Longitude), 64)
	if latErr == nil && lonErr == nil && utils.ValidateCoordinates(lat, lon) {
		v.MapLat, v.MapLon, v.HasPoint = lat, lon, true
	}
	return v
}

func locationToForm(loc *domain.Location) dto.LocationForm {
	form := dto.LocationForm{
		Name:     loc.Name,
		Type:     string(loc.Type),
		IsActive: loc.IsActive,
	}
	if loc.Address != nil {
		form.Address = *loc.Address
	}
	if loc.Latitude != nil {
		form.Latitude = strconv.FormatFloat(*loc.Latitude, 'f', 6, 64)
	}
	if loc.Longitude != nil {
		form.Longitude = strconv.FormatFloat(*loc.Longitude, 'f', 6, 64)
	}
	return form
}

func vehicleToForm(v *domain.Vehicle) dto.VehicleForm {
	form := dto.VehicleForm{
		Name:     v.Name,
		Type:     v.Type,
		Capacity: v.Capacity,
	}
	if v.LuggageCapacity != nil {
		form.LuggageCapacity = strconv.Itoa(*v.LuggageCapacity)
	}
	if v.ImageURL != nil {
		form.ImageURL = *v.ImageURL
	}
	return form
}

func expenseToForm(e *domain.Expense) dto.ExpenseForm {
	form := dto.ExpenseForm{
		EntryDate:     e.EntryDate.Format("2006-01-02"),
		ExpenseNumber: e.ExpenseNumber,
		TotalAmount:   e.TotalAmount,
	}
	if e.Description != nil {
		form.Description = *e.Description
	}
	if e.VehicleID != nil {
		form.VehicleID = *e.VehicleID
	}
	if e.SupplierID != nil {
		form.SupplierID = *e.SupplierID
	}
	for _, d := range e.Details {
		form.LineAmounts = append(form.LineAmounts, strconv.FormatFloat(d.Amount, 'f', 2, 64))
		form.LineTypeIDs = append(form.LineTypeIDs, strconv.FormatInt(d.ExpenseTypeID, 10))
	}
	return form
}

// expenseLines - строки формы для повторного показа; нечисловой тип строки сбрасывается
func expenseLines(form dto.ExpenseForm) []ExpenseLineView {
	n := len(form.LineAmounts)
	if len(form.LineTypeIDs) > n {
		n = len(form.LineTypeIDs)
	}

	lines := make([]ExpenseLineView, 0, n+1)
	for i := 0; i < n; i++ {
		var line ExpenseLineView
		if i < len(form.LineAmounts) {
			line.Amount = form.LineAmounts[i]
		}
		if i < len(form.LineTypeIDs) {
			line.TypeID, _ = strconv.ParseInt(form.LineTypeIDs[i], 10, 64)
		}
		if line.Amount == "" && line.TypeID == 0 {
			continue
		}
		lines = append(lines, line)
	}
	return append(lines, ExpenseLineView{})
}

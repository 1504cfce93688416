package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidLimit = New(
		"INVALID_LIMIT",
		"limit must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidReservationCode = New(
		"INVALID_RESERVATION_CODE",
		"Reservation code is required",
		http.StatusBadRequest,
	)

	ErrReservationNotFound = New(
		"RESERVATION_NOT_FOUND",
		"Reservation not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrVehicleNotFound = New(
		"VEHICLE_NOT_FOUND",
		"Vehicle not found",
		http.StatusNotFound,
	)

	ErrExpenseNotFound = New(
		"EXPENSE_NOT_FOUND",
		"Expense not found",
		http.StatusNotFound,
	)

	ErrTransferOptionUnavailable = New(
		"TRANSFER_OPTION_UNAVAILABLE",
		"Selected transfer option is not available",
		http.StatusBadRequest,
	)

	ErrInvalidStatusTransition = New(
		"INVALID_STATUS",
		"Reservation status cannot be changed",
		http.StatusBadRequest,
	)

	ErrReservationCodeConflict = New(
		"RESERVATION_CODE_CONFLICT",
		"Reservation code already exists",
		http.StatusConflict,
	)

	ErrResourceInUse = New(
		"RESOURCE_IN_USE",
		"Record is referenced by other records and cannot be deleted",
		http.StatusConflict,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrMailNotConfigured = New(
		"MAIL_NOT_CONFIGURED",
		"Mail transport is not configured",
		http.StatusInternalServerError,
	)

	ErrMailSendFailed = New(
		"MAIL_SEND_FAILED",
		"Message could not be sent, please try again later",
		http.StatusInternalServerError,
	)

	ErrPaymentFailed = New(
		"PAYMENT_FAILED",
		"Payment could not be started",
		http.StatusInternalServerError,
	)

	ErrBackendUnavailable = New(
		"BACKEND_ERROR",
		"Backend request failed",
		http.StatusInternalServerError,
	)

	// ErrRelationUnavailable - бэкенд не смог разрешить связь (join) в запросе
	ErrRelationUnavailable = New(
		"RELATION_UNAVAILABLE",
		"Related records could not be resolved",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      int    `json:"code,omitempty"`
	Shortfall *int64 `json:"shortfall,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// AppErrorResponse translates a ledger core error into an HTTP response.
// Sentinel errors map to stable statuses; anything unrecognized becomes an
// opaque 500 so storage errors never leak to clients.
func AppErrorResponse(c echo.Context, err error) error {
	var insufficient *apperrors.InsufficientFundsError
	if errors.As(err, &insufficient) {
		shortfall := insufficient.Shortfall()
		return c.JSON(http.StatusPaymentRequired, ErrorResponse{
			Success:   false,
			Error:     apperrors.ErrInsufficientFunds.Error(),
			Code:      http.StatusPaymentRequired,
			Shortfall: &shortfall,
		})
	}

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidRadius),
		errors.Is(err, apperrors.ErrUnsupportedLockTerm):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
		message = err.Error()
	case errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrRecipientNotFound),
		errors.Is(err, apperrors.ErrTransactionNotFound),
		errors.Is(err, apperrors.ErrGeofenceNotFound),
		errors.Is(err, apperrors.ErrLockNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrSelfTransferNotAllowed),
		errors.Is(err, apperrors.ErrAlreadyClaimed),
		errors.Is(err, apperrors.ErrGeofenceNotEligible),
		errors.Is(err, apperrors.ErrLockNotMatured),
		errors.Is(err, apperrors.ErrLockAlreadyResolved),
		errors.Is(err, apperrors.ErrTransactionSettled),
		errors.Is(err, apperrors.ErrConcurrentModification):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrProcessorFailure):
		status = http.StatusBadGateway
		message = err.Error()
	}

	return ErrorResponseHandler(c, status, message)
}

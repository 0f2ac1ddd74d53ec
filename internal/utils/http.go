package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/apperrors"
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
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
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

// AppErrorResponse maps a typed application error to its HTTP representation.
// Store errors surface as a generic 500 with no internal detail.
func AppErrorResponse(c echo.Context, err error) error {
	code := apperrors.Code(err)

	status := http.StatusInternalServerError
	message := "Internal server error"
	retryable := false

	var ae *apperrors.AppError
	if errors.As(err, &ae) && code != apperrors.CodeStore {
		message = ae.Message
	}

	switch code {
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeUnauthorized:
		status = http.StatusForbidden
	case apperrors.CodeDuplicateTransaction, apperrors.CodeSelfTransaction,
		apperrors.CodeInvalidStatus, apperrors.CodeNoBillingAddress:
		status = http.StatusBadRequest
	case apperrors.CodeConflict:
		status = http.StatusConflict
		retryable = true
	}

	return c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      string(code),
		Retryable: retryable,
	})
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the one-line JSON error envelope returned on every failure.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody carries a human-readable confirmation for mutating operations.
type MessageBody struct {
	Message   string      `json:"message"`
	Portfolio interface{} `json:"portfolio,omitempty"`
}

// ErrorResponse writes a JSON error with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Error: message})
}

// NotFoundResponse writes a 404 error.
func NotFoundResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusNotFound, message)
}

// BadRequestResponse writes a 400 error.
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// InternalErrorResponse writes a generic 500 error.
func InternalErrorResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusInternalServerError, message)
}

// AppErrorResponse maps an AppError to its status and error body; anything
// else becomes an opaque 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalErrorResponse(c, "something went wrong")
}

// SuccessResponse writes a 200 with the given payload.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// CreatedResponse writes a 201 with the given payload.
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// MessageResponse writes a 200 with a message and optional portfolio payload.
func MessageResponse(c echo.Context, message string, portfolio interface{}) error {
	return c.JSON(http.StatusOK, MessageBody{Message: message, Portfolio: portfolio})
}

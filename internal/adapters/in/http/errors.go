package http

import (
	"errors"
	"net/http"

	"sendit/internal/adapters/in/http/auth"
	"sendit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors onto HTTP status codes: missing
// objects become 404, authorization failures 403, bad input 400, and rejected
// state transitions 409. Anything unrecognized is a 500 with a generic
// message so internals never leak to clients.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

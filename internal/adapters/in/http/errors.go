package http

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates application errors into HTTP status codes.
// Unrecognized errors become a 500 without leaking internals.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrOperationNotAllowed):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrUserNotActive):
		return writeError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	return writeError(ctx, http.StatusInternalServerError, "internal server error")
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-manager/internal/api/handler"
	"github.com/taskforge/task-manager/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures as a field→message map in the envelope data.
//   - Logs unexpected errors internally without leaking details to the client.
//
// Every error response uses the uniform envelope
// {status, message, data, code}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Validation failures carry their own payload.
		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = handler.Failure(c, http.StatusBadRequest, "Validation failed", ve.Fields)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = handler.Failure(c, code, msg, nil)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "A user with this email already exists"
	case errors.Is(err, domain.ErrTaskExists):
		return http.StatusBadRequest, "A task with this title already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrPasswordUnchanged):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Deliberately vague: never reveal which part of the credentials failed.
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrAccountLocked):
		return http.StatusUnauthorized, "Account locked. Please contact an administrator."
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to perform this action"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "An internal error occurred"
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RetryAfter is the hint sent with 503 responses when a job is locked by another request.
const RetryAfter = time.Second

// badRequestError marks request problems found before any use case runs.
type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string { return e.message }

func badRequest(message string) error {
	return &badRequestError{message: message}
}

// statusFor maps a use case error onto an HTTP status.
func statusFor(err error) int {
	var invalidTransition *errs.InvalidTransitionError
	var badReq *badRequestError

	switch {
	case errors.As(err, &badReq):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrAlreadyClaimed),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrDuplicateActiveJob),
		errors.Is(err, errs.ErrDuplicateEntry),
		errors.Is(err, errs.ErrTerminalJob):
		return http.StatusConflict
	case errors.As(err, &invalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrAgentNotActive):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c echo.Context, err error) error {
	status := statusFor(err)

	if status == http.StatusServiceUnavailable {
		c.Response().Header().Set("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, servers.Error{Code: status, Message: message})
}

// handleError renders what escapes the handlers, such as echo's 404 and 405 and the
// parameter binding errors of the generated wrapper, with the same body.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		err = s.respondError(c, err)
	} else {
		err = c.JSON(httpErr.Code, servers.Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)})
	}

	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "write error response", "error", err)
	}
}

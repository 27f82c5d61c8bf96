package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/tutoring_server/internal/apperror"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Envelope wraps every response body
type Envelope struct {
	Success bool          `json:"success"`
	Code    apperror.Code `json:"code,omitempty"`
	Message string        `json:"message"`
	Data    any           `json:"data"`
}

func success(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// HandleError renders any error returned by a handler or middleware as a failure envelope
func (h *Handler) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := apperror.CodeInternal
	message := "Internal server error."
	status := code.HTTPStatus()

	var httpErr *echo.HTTPError
	if appErr, ok := apperror.As(err); ok {
		code = appErr.Code
		message = appErr.Message
		status = code.HTTPStatus()
	} else if errors.As(err, &httpErr) {
		// router and binder errors keep their own status (405, 413, 415...)
		code = apperror.CodeFromStatus(httpErr.Code)
		message = fmt.Sprint(httpErr.Message)
		status = httpErr.Code
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, Envelope{Success: false, Code: code, Message: message})
	}
	if writeErr != nil {
		h.logger.Error("Failed to write error response", zap.Error(writeErr))
	}
}

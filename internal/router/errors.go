package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "hrdashboard/internal/errors"
	"hrdashboard/internal/logger"
)

// ErrorHandler renders errors as plain text, or JSON for JSON clients,
// and logs server side failures.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, resp := resolveError(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request().Context()).Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", status,
			"error", err,
		)
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(status)
	case acceptsJSON(c):
		writeErr = c.JSON(status, resp)
	default:
		writeErr = c.String(status, resp.Error)
	}
	if writeErr != nil {
		logger.FromContext(c.Request().Context()).Warn("failed to write error response", "error", writeErr)
	}
}

func resolveError(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		mapped := apperrors.MapErrorToHTTP(err)
		return mapped.StatusCode, mapped.ToErrorResponse()
	}

	switch msg := he.Message.(type) {
	case apperrors.ErrorResponse:
		return he.Code, msg
	case string:
		return he.Code, apperrors.ErrorResponse{Error: msg, Code: statusCode(he.Code)}
	default:
		return he.Code, apperrors.ErrorResponse{Error: http.StatusText(he.Code), Code: statusCode(he.Code)}
	}
}

// statusCode turns a status into a code such as NOT_FOUND.
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func acceptsJSON(c echo.Context) bool {
	req := c.Request()
	return strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) ||
		strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"hrdashboard/internal/auth"
	"hrdashboard/internal/errors"
	"hrdashboard/internal/web"
)

// httpError converts a domain error into an echo error carrying an ErrorResponse.
func httpError(err error) error {
	mapped := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse()).SetInternal(err)
}

func badRequest() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

// parseID reads a numeric path parameter. Ids that cannot exist map to notFound.
func parseID(c echo.Context, name string, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, httpError(notFound)
	}
	return uint(id), nil
}

// page builds template data for the signed in admin.
func page(c echo.Context, title string, data interface{}) web.Page {
	p := web.Page{Title: title, Data: data}
	if sess, ok := auth.Current(c); ok {
		p.Admin = sess.Email
	}
	return p
}

func wantsJSON(c echo.Context) bool {
	req := c.Request()
	return strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) ||
		strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Every body carries a "success" boolean; errors add a "message" string.
// Clients key off success rather than status codes alone.

// OK writes a success envelope with the given payload fields merged in.
func OK(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// Fail writes a failure envelope with a user-facing message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"message": message,
	})
}

// ServerError logs the underlying fault and reports an opaque failure.
// The error detail is echoed back only in development builds.
func ServerError(c echo.Context, message string, err error, development bool) error {
	c.Logger().Errorf("%s: %v", message, err)
	body := echo.Map{
		"success": false,
		"message": message,
	}
	if development && err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}

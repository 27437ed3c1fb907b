// Package response holds the wire helpers shared by all HTTP handlers.
package response

import "github.com/labstack/echo/v4"

// Message is the envelope used by every non-payload response. Errors
// and simple acknowledgements alike travel as {"msg": "..."}.
type Message struct {
	Msg string `json:"msg"`
}

// JSON writes a payload response.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Msg writes a message-only response.
func Msg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, Message{Msg: msg})
}

package http

import "github.com/labstack/echo/v4"

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, Response{Success: true, Message: message, Data: data})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{Success: false, Message: message})
}

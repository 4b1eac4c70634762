package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response wrapper carried by every /api response.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Code    int    `json:"code"`
}

// Success renders a 200 envelope around data.
func Success(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
		Code:    http.StatusOK,
	})
}

// Failure renders an error envelope with the given HTTP status code.
func Failure(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{
		Status:  false,
		Message: message,
		Data:    data,
		Code:    code,
	})
}

package handler

import (
	"errors"
	"net/http"

	"reservation-service/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errorResponse maps a service error onto the HTTP taxonomy. Expected
// business failures carry their reason to the caller; anything unexpected
// is logged with detail and surfaced generically.
func errorResponse(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		log.Error("Unexpected error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

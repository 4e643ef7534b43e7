package handlers

import (
	"errors"
	"net/http"

	"clinica_app_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// serviceError maps the service-layer error taxonomy onto HTTP statuses:
// validation 400, conflict 409, not-found 404, everything else 500.
func serviceError(err error) *echo.HTTPError {
	switch {
	case services.IsValidationError(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSlotUnavailable),
		errors.Is(err, services.ErrDuplicateBlock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Registro não encontrado")
	case errors.Is(err, services.ErrScheduleConfigMissing):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Erro interno")
	}
}

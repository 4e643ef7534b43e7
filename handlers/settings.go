package handlers

import (
	"net/http"

	"clinica_app_go/db"
	"clinica_app_go/models"
	"clinica_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetScheduleSettingsHandler returns the current schedule configuration
func GetScheduleSettingsHandler(c echo.Context) error {
	cfg, err := services.GetScheduleConfig(db.DB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateScheduleSettingsHandler replaces the schedule configuration.
// The body accepts both working-days formats; decoding normalizes the legacy
// boolean shape before validation.
func UpdateScheduleSettingsHandler(c echo.Context) error {
	var cfg models.ScheduleConfig
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}

	if err := services.SaveScheduleConfig(db.DB, &cfg); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

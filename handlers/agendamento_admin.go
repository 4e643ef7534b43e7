package handlers

import (
	"fmt"
	"net/http"
	"time"

	"clinica_app_go/db"
	"clinica_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetAgendamentosHandler lists appointments for the admin dashboard,
// optionally filtered to one date via ?data=YYYY-MM-DD
func GetAgendamentosHandler(c echo.Context) error {
	var date *time.Time
	if dateStr := c.QueryParam("data"); dateStr != "" {
		parsed, err := services.ParseDate(dateStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD")
		}
		date = &parsed
	}

	appointments, err := services.ListAppointments(db.DB, date)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, appointments)
}

// UpdateAgendamentoStatusHandler moves an appointment through its lifecycle
func UpdateAgendamentoStatusHandler(c echo.Context) error {
	var req struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}

	apt, err := services.UpdateAppointmentStatus(db.DB, c.Param("id"), req.Status)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, apt)
}

// ExportAgendamentosHandler streams the appointment ledger as an .xlsx file.
// ?de= and ?ate= bound the date range; the default covers the last 30 days
// through the end of the booking window.
func ExportAgendamentosHandler(c echo.Context) error {
	from := services.Today().AddDate(0, 0, -30)
	to := services.Today().AddDate(0, 1, 0)

	if fromStr := c.QueryParam("de"); fromStr != "" {
		parsed, err := services.ParseDate(fromStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Data inválida em 'de', use o formato YYYY-MM-DD")
		}
		from = parsed
	}
	if toStr := c.QueryParam("ate"); toStr != "" {
		parsed, err := services.ParseDate(toStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Data inválida em 'ate', use o formato YYYY-MM-DD")
		}
		to = parsed
	}

	appointments, err := services.ListAppointmentsInRange(db.DB, from, to)
	if err != nil {
		return serviceError(err)
	}

	workbook, err := services.BuildAppointmentsWorkbook(appointments)
	if err != nil {
		return serviceError(err)
	}

	filename := fmt.Sprintf("agendamentos_%s_%s.xlsx", services.FormatDate(from), services.FormatDate(to))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return workbook.Write(c.Response().Writer)
}

package handlers

import (
	"net/http"
	"strings"

	"clinica_app_go/config"
	"clinica_app_go/db"
	"clinica_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// mensagemPolicy strips all markup from the free-text booking message
var mensagemPolicy = bluemonday.StrictPolicy()

// GetHorariosHandler returns the bookable time slots for a date (JSON).
// An empty list with "fechado" true means the clinic does not operate that
// weekday; an empty list with "fechado" false means the day is fully booked
// or outside the booking window.
func GetHorariosHandler(c echo.Context) error {
	dateStr := c.QueryParam("data")
	if dateStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Parâmetro data é obrigatório")
	}

	date, err := services.ParseDate(dateStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD")
	}

	cfg, err := services.GetScheduleConfig(db.DB)
	if err != nil {
		return serviceError(err)
	}

	slots, err := services.ComputeAvailableSlots(db.DB, cfg, date)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"horariosDisponiveis": slots,
		"data":                dateStr,
		"fechado":             !services.IsWorkingDay(cfg, date),
	})
}

// AgendarHandler handles the public booking submission
func AgendarHandler(c echo.Context) error {
	var req struct {
		Nome             string `json:"nome" form:"nome"`
		Email            string `json:"email" form:"email"`
		Telefone         string `json:"telefone" form:"telefone"`
		Data             string `json:"data" form:"data"`
		Horario          string `json:"horario" form:"horario"`
		Modalidade       string `json:"modalidade" form:"modalidade"`
		Mensagem         string `json:"mensagem" form:"mensagem"`
		PrimeiraConsulta bool   `json:"primeiraConsulta" form:"primeiraConsulta"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}

	if req.Data == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Data é obrigatória")
	}
	date, err := services.ParseDate(req.Data)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD")
	}

	cfg, err := services.GetScheduleConfig(db.DB)
	if err != nil {
		return serviceError(err)
	}

	var mensagem *string
	if sanitized := strings.TrimSpace(mensagemPolicy.Sanitize(req.Mensagem)); sanitized != "" {
		mensagem = &sanitized
	}

	apt, err := services.BookAppointment(db.DB, cfg, services.BookingRequest{
		Nome:             req.Nome,
		Email:            req.Email,
		Telefone:         req.Telefone,
		Data:             date,
		Horario:          req.Horario,
		Modalidade:       req.Modalidade,
		Mensagem:         mensagem,
		PrimeiraConsulta: req.PrimeiraConsulta,
	})
	if err != nil {
		return serviceError(err)
	}

	appCfg := c.Get("config").(*config.Config)
	services.SendEmailAsync(appCfg, services.BuildBookingConfirmationEmail(apt, appCfg.AppURL))

	return c.JSON(http.StatusCreated, map[string]string{
		"codigo": apt.Codigo,
	})
}

// CancelarHandler cancels a booking via its confirmation code, freeing the slot
func CancelarHandler(c echo.Context) error {
	var req struct {
		Codigo string `json:"codigo" form:"codigo"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}
	if strings.TrimSpace(req.Codigo) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Código é obrigatório")
	}

	apt, err := services.CancelAppointmentByCodigo(db.DB, strings.TrimSpace(req.Codigo))
	if err != nil {
		return serviceError(err)
	}

	appCfg := c.Get("config").(*config.Config)
	services.SendEmailAsync(appCfg, services.BuildBookingCancelledEmail(apt, appCfg.AppURL))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Agendamento cancelado",
	})
}

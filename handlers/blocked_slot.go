package handlers

import (
	"net/http"

	"clinica_app_go/db"
	"clinica_app_go/models"
	"clinica_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetBlockedSlotsHandler lists blocks for the admin screen. By default every
// block is returned (active and inactive); ?active=true narrows to active
// ones, ?type=RECURRING|ONE_TIME narrows by kind.
func GetBlockedSlotsHandler(c echo.Context) error {
	blockType := c.QueryParam("type")
	if blockType != "" && blockType != models.BlockTypeRecurring && blockType != models.BlockTypeOneTime {
		return echo.NewHTTPError(http.StatusBadRequest, "Tipo de bloqueio inválido")
	}

	if c.QueryParam("active") == "true" {
		blocks, err := services.ListActiveBlockedSlots(db.DB, blockType)
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(http.StatusOK, blocks)
	}

	blocks, err := services.ListBlockedSlots(db.DB)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, blocks)
}

// CreateBlockedSlotHandler creates a recurring or one-time block
func CreateBlockedSlotHandler(c echo.Context) error {
	var req struct {
		BlockType    string `json:"blockType" form:"blockType"`
		DayOfWeek    *int   `json:"dayOfWeek" form:"dayOfWeek"`
		SpecificDate string `json:"specificDate" form:"specificDate"`
		TimeSlot     string `json:"timeSlot" form:"timeSlot"`
		Reason       string `json:"reason" form:"reason"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requisição inválida")
	}

	block := &models.BlockedSlot{
		BlockType: req.BlockType,
		DayOfWeek: req.DayOfWeek,
		TimeSlot:  req.TimeSlot,
		Reason:    req.Reason,
		IsActive:  true,
	}

	if req.SpecificDate != "" {
		date, err := services.ParseDate(req.SpecificDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD")
		}
		block.SpecificDate = &date
	}

	if err := services.CreateBlockedSlot(db.DB, block); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, block)
}

// ToggleBlockedSlotHandler flips a block's active flag
func ToggleBlockedSlotHandler(c echo.Context) error {
	block, err := services.ToggleBlockedSlot(db.DB, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, block)
}

// DeleteBlockedSlotHandler hard-removes a block
func DeleteBlockedSlotHandler(c echo.Context) error {
	if err := services.DeleteBlockedSlot(db.DB, c.Param("id")); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

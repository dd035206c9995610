package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// SettingsHandler serves the single-row application configuration.  The
// row is pinned to id 1; any other id is rejected outright.
type SettingsHandler struct {
	Settings *repository.SettingsRepo
}

func NewSettingsHandler(settings *repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// Get returns the configuration row, with the stored default_quantity
// exposed to clients under the name they submit it as ("quantity").
// A missing row yields zero defaults rather than a 404.
func (h *SettingsHandler) Get(c echo.Context) error {
	if c.Param("id") != "1" {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Only configuration ID 1 can be fetched."})
	}
	s, err := h.Settings.Get(c.Request().Context())
	if err != nil {
		log.Printf("Fetch Settings Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching application settings"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":                           s.ID,
		"quantity":                     s.DefaultQuantity,
		"fixed_loading_charge":         s.FixedLoadingCharge,
		"freight_rate_per_quintal_usd": s.FreightRatePerQuintalUSD,
	})
}

// Update upserts the configuration row so the first save works even
// before the row exists.
func (h *SettingsHandler) Update(c echo.Context) error {
	if c.Param("id") != "1" {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Only configuration ID 1 can be updated."})
	}

	var req struct {
		Quantity                 any `json:"quantity"`
		FixedLoadingCharge       any `json:"fixed_loading_charge"`
		FreightRatePerQuintalUSD any `json:"freight_rate_per_quintal_usd"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	quantity, okQ := utils.ParseNumber(req.Quantity)
	loading, okL := utils.ParseNumber(req.FixedLoadingCharge)
	freight, okF := utils.ParseNumber(req.FreightRatePerQuintalUSD)
	if !okQ || !okL || !okF {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All required numerical fields must be provided."})
	}

	s := model.AppSettings{
		ID:                       model.SettingsID,
		DefaultQuantity:          quantity,
		FixedLoadingCharge:       loading,
		FreightRatePerQuintalUSD: freight,
	}
	if err := h.Settings.Upsert(c.Request().Context(), s); err != nil {
		log.Printf("Update Settings Error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating application settings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Settings updated successfully"})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/prefs"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// SettingsHandler serves the settings page.
type SettingsHandler struct {
	prefs *prefs.Store
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(prefStore *prefs.Store) *SettingsHandler {
	return &SettingsHandler{prefs: prefStore}
}

// Get GET /settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.prefs.Preferences()})
}

// Update PUT /settings changes theme and/or language.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.Theme != "" {
		theme := domain.Theme(req.Theme)
		if !theme.Valid() {
			return apperrors.NewValidationError("theme must be dark, light or auto", nil)
		}
		h.prefs.SetTheme(c.Context(), theme)
	}
	if req.Language != "" {
		h.prefs.SetLanguage(c.Context(), req.Language)
	}
	return c.JSON(fiber.Map{"data": h.prefs.Preferences()})
}

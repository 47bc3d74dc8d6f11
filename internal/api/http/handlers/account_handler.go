package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// AccountHandler serves the customer's own profile page.
type AccountHandler struct {
	sessions *session.Store
	backend  *backend.Client
}

// NewAccountHandler constructs handler.
func NewAccountHandler(sessions *session.Store, client *backend.Client) *AccountHandler {
	return &AccountHandler{sessions: sessions, backend: client}
}

// Get GET /account.
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	user, err := h.backend.CurrentUser(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

// Update PUT /account mutates the current user's own profile. Role is
// never changed from here.
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	snap := h.sessions.Snapshot()
	user, err := h.backend.UpdateUser(c.Context(), snap.UserID, backend.UpdateUserRequest{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/cart"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/i18n"
	"github.com/Leerm14/restaurantmanagement/internal/prefs"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// CartHandler owns the basket pages and checkout.
type CartHandler struct {
	cart     *cart.Store
	sessions *session.Store
	prefs    *prefs.Store
	backend  *backend.Client
}

// NewCartHandler constructs handler.
func NewCartHandler(cartStore *cart.Store, sessions *session.Store, prefStore *prefs.Store, client *backend.Client) *CartHandler {
	return &CartHandler{cart: cartStore, sessions: sessions, prefs: prefStore, backend: client}
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	return dto.CartResponse{
		Items:      h.cart.Lines(),
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
	}
}

// Get GET /cart.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.cartResponse()})
}

// AddItem POST /cart/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" || req.Price < 0 {
		return apperrors.NewValidationError("id, name and price required", nil)
	}

	h.cart.Add(c.Context(), domain.MenuItem{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.cartResponse()})
}

// UpdateQuantity PATCH /cart/items/:id.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	h.cart.UpdateQuantity(c.Context(), id, req.Quantity)
	return c.JSON(fiber.Map{"data": h.cartResponse()})
}

// RemoveItem DELETE /cart/items/:id.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	h.cart.Remove(c.Context(), id)
	return c.JSON(fiber.Map{"data": h.cartResponse()})
}

// Clear DELETE /cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.cart.Clear(c.Context())
	return c.JSON(fiber.Map{"data": h.cartResponse()})
}

// Checkout POST /cart/checkout converts the cart into a backend order.
// Dine-in requires an active booking (Confirmed or Pending, scheduled from
// the start of today); without one the caller is told to book first.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	lang := h.prefs.Preferences().Language

	snap := h.sessions.Snapshot()
	if !snap.Authenticated {
		return apperrors.NewUnauthorized(i18n.T(lang, "session.required"))
	}

	lines := h.cart.Lines()
	if len(lines) == 0 {
		return apperrors.NewValidationError(i18n.T(lang, "cart.empty"), nil)
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.OrderType != domain.OrderTypeDinein && req.OrderType != domain.OrderTypeTakeaway {
		return apperrors.NewValidationError("orderType must be Dinein or Takeaway", nil)
	}

	orderReq := backend.CreateOrderRequest{
		UserID:    snap.UserID,
		OrderType: req.OrderType,
	}
	for _, line := range lines {
		orderReq.OrderItems = append(orderReq.OrderItems, backend.OrderItemRequest{
			MenuItemID: line.ID,
			Quantity:   line.Quantity,
		})
	}

	if req.OrderType == domain.OrderTypeDinein {
		booking, err := h.activeBooking(c, snap.UserID)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperrors.NewConflict("active booking required for dine-in", map[string]any{
				"redirect": "/booking",
			})
		}
		if booking.Table != nil {
			orderReq.TableID = &booking.Table.ID
		}
	}

	order, err := h.backend.CreateOrder(c.Context(), orderReq)
	if err != nil {
		return err
	}

	h.cart.Clear(c.Context())
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":    order,
		"message": i18n.T(lang, "order.created"),
	})
}

func (h *CartHandler) activeBooking(c *fiber.Ctx, userID int64) (*domain.Booking, error) {
	bookings, err := h.backend.BookingsByUser(c.Context(), userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range bookings {
		if bookings[i].Active(now) {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

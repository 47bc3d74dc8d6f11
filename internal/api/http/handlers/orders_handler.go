package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// OrdersHandler serves the customer order-history pages.
type OrdersHandler struct {
	sessions *session.Store
	backend  *backend.Client
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(sessions *session.Store, client *backend.Client) *OrdersHandler {
	return &OrdersHandler{sessions: sessions, backend: client}
}

// History GET /order-history lists the current user's orders.
func (h *OrdersHandler) History(c *fiber.Ctx) error {
	snap := h.sessions.Snapshot()
	orders, err := h.backend.OrdersByUser(c.Context(), snap.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}

// Get GET /order-history/:id returns one of the current user's orders.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.backend.Order(c.Context(), id)
	if err != nil {
		return err
	}
	if order.UserID != h.sessions.Snapshot().UserID {
		return apperrors.NewForbidden("not your order")
	}
	return c.JSON(fiber.Map{"data": order})
}

// Cancel PATCH /order-history/:id/cancel.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.backend.Order(c.Context(), id)
	if err != nil {
		return err
	}
	if order.UserID != h.sessions.Snapshot().UserID {
		return apperrors.NewForbidden("not your order")
	}
	if err := h.backend.CancelOrder(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"cancelled": true}})
}

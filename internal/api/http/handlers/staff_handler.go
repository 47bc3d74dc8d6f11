package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// StaffHandler serves the staff table and order management pages.
type StaffHandler struct {
	backend *backend.Client
}

// NewStaffHandler constructs handler.
func NewStaffHandler(client *backend.Client) *StaffHandler {
	return &StaffHandler{backend: client}
}

// Tables GET /staff/tables, optionally filtered by status.
func (h *StaffHandler) Tables(c *fiber.Ctx) error {
	tables, err := h.backend.ListTables(c.Context(), domain.TableStatus(c.Query("status")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tables})
}

// UpdateTableStatus PATCH /staff/tables/:id/status.
func (h *StaffHandler) UpdateTableStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	if err := h.backend.UpdateTableStatus(c.Context(), id, domain.TableStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// TableOrders GET /staff/tables/:id/orders.
func (h *StaffHandler) TableOrders(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	orders, err := h.backend.OrdersByTable(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}

// Orders GET /staff/orders?status= lists orders for the kitchen board.
func (h *StaffHandler) Orders(c *fiber.Ctx) error {
	status := domain.OrderStatus(c.Query("status", string(domain.OrderStatusPending)))
	orders, err := h.backend.OrdersByStatus(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}

// SearchOrders GET /staff/orders/search?email= or ?phone= or ?table=.
func (h *StaffHandler) SearchOrders(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		orders, err := h.backend.SearchOrdersByEmail(c.Context(), email)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": orders})
	}
	if phone := c.Query("phone"); phone != "" {
		orders, err := h.backend.SearchOrdersByPhone(c.Context(), phone)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": orders})
	}
	return apperrors.NewValidationError("email or phone required", nil)
}

// UpdateOrderStatus PATCH /staff/orders/:id/status.
func (h *StaffHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	if err := h.backend.UpdateOrderStatus(c.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// PendingPayments GET /staff/payments/pending mirrors the cashier view
// the poller keeps fresh.
func (h *StaffHandler) PendingPayments(c *fiber.Ctx) error {
	payments, err := h.backend.PaymentsByStatus(c.Context(), domain.PaymentStatusPending)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payments})
}

// ConfirmPayment PATCH /staff/payments/:id/confirm.
func (h *StaffHandler) ConfirmPayment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.ConfirmPayment(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"confirmed": true}})
}

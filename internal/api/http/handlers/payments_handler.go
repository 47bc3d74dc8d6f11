package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// PaymentsHandler backs the payment result pages. The backend owns all
// payment state transitions; these endpoints only relay the outcome the
// payment gateway redirected the customer with.
type PaymentsHandler struct {
	backend *backend.Client
	logger  *zap.Logger
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(client *backend.Client, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{backend: client, logger: logger}
}

// Create POST /payments records a pending payment for an order.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.OrderID <= 0 || req.Amount <= 0 {
		return apperrors.NewValidationError("orderId and amount required", nil)
	}

	payment, err := h.backend.CreatePayment(c.Context(), backend.CreatePaymentRequest{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payment})
}

// Success POST /payment/payment-success confirms the pending payment of
// the order the gateway redirected with.
func (h *PaymentsHandler) Success(c *fiber.Ctx) error {
	return h.resolve(c, true)
}

// Failed POST /payment/payment-failed marks the pending payment failed.
func (h *PaymentsHandler) Failed(c *fiber.Ctx) error {
	return h.resolve(c, false)
}

func (h *PaymentsHandler) resolve(c *fiber.Ctx, success bool) error {
	orderID, err := paramQueryID(c, "orderId")
	if err != nil {
		return err
	}

	payments, err := h.backend.PaymentsByOrder(c.Context(), orderID)
	if err != nil {
		return err
	}

	for _, payment := range payments {
		if payment.Status != domain.PaymentStatusPending {
			continue
		}
		if success {
			err = h.backend.ConfirmPayment(c.Context(), payment.ID)
		} else {
			err = h.backend.FailPayment(c.Context(), payment.ID)
		}
		if err != nil {
			return err
		}
		h.logger.Info("payment resolved",
			zap.Int64("payment_id", payment.ID),
			zap.Int64("order_id", orderID),
			zap.Bool("success", success),
		)
		return c.JSON(fiber.Map{"data": fiber.Map{"paymentId": payment.ID, "resolved": true}})
	}
	return apperrors.NewNotFound("pending payment", map[string]any{"orderId": orderID})
}

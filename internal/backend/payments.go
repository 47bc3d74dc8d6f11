package backend

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// CreatePaymentRequest starts settlement of an order.
type CreatePaymentRequest struct {
	OrderID int64                `json:"orderId"`
	Amount  int64                `json:"amount"`
	Method  domain.PaymentMethod `json:"method"`
}

// CreatePayment records a pending payment.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	var payment domain.Payment
	if err := c.post(ctx, "/api/payments", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// PaymentsByOrder returns payments recorded for an order.
func (c *Client) PaymentsByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := c.get(ctx, fmt.Sprintf("/api/payments/order/%d", orderID), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// PaymentsByStatus lists payments in the given status.
func (c *Client) PaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := c.get(ctx, fmt.Sprintf("/api/payments/status/%s", status), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// ConfirmPayment marks a payment completed.
func (c *Client) ConfirmPayment(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/api/payments/%d/confirm", id), nil, nil)
}

// FailPayment marks a payment failed.
func (c *Client) FailPayment(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/api/payments/%d/fail", id), nil, nil)
}

// RevenueReport aggregates completed payments between two dates.
func (c *Client) RevenueReport(ctx context.Context, from, to time.Time) (*domain.RevenueReport, error) {
	query := url.Values{}
	query.Set("from", from.Format("2006-01-02"))
	query.Set("to", to.Format("2006-01-02"))
	var report domain.RevenueReport
	if err := c.get(ctx, "/api/payments/revenue-report", query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

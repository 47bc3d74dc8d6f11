package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// OrderItemRequest is one line of an order-creation request.
type OrderItemRequest struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	UserID     int64              `json:"userId"`
	OrderType  domain.OrderType   `json:"orderType"`
	TableID    *int64             `json:"tableId,omitempty"`
	OrderItems []OrderItemRequest `json:"orderItems"`
}

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Order fetches one order.
func (c *Client) Order(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersByUser returns a user's order history.
func (c *Client) OrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/user/%d", userID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByStatus lists orders in the given status.
func (c *Client) OrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/status/%s", status), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByTable lists orders attached to a table.
func (c *Client) OrdersByTable(ctx context.Context, tableID int64) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/orders/table/%d", tableID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SearchOrdersByEmail finds orders by customer email.
func (c *Client) SearchOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	query := url.Values{"email": []string{email}}
	var orders []domain.Order
	if err := c.get(ctx, "/api/orders/search/email", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SearchOrdersByPhone finds orders by customer phone.
func (c *Client) SearchOrdersByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	query := url.Values{"phone": []string{phone}}
	var orders []domain.Order
	if err := c.get(ctx, "/api/orders/search/phone", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder replaces an order's lines and type.
func (c *Client) UpdateOrder(ctx context.Context, id int64, req CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.put(ctx, fmt.Sprintf("/api/orders/%d", id), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus transitions an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return c.patch(ctx, fmt.Sprintf("/api/orders/%d/status", id), body, nil)
}

// CancelOrder cancels an order.
func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/api/orders/%d/cancel", id), nil, nil)
}

// MonthlyOrderStats returns per-month order counts for the reports page.
func (c *Client) MonthlyOrderStats(ctx context.Context, year int) ([]domain.MonthlyOrderStat, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	var stats []domain.MonthlyOrderStat
	if err := c.get(ctx, "/api/orders/stats/monthly", query, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

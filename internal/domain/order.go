package domain

import "time"

// OrderType distinguishes dine-in from takeaway orders.
type OrderType string

const (
	OrderTypeDinein   OrderType = "Dinein"
	OrderTypeTakeaway OrderType = "Takeaway"
)

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderItem is a line of an order as the backend stores it.
type OrderItem struct {
	MenuItemID int64  `json:"menuItemId"`
	Name       string `json:"name,omitempty"`
	Price      int64  `json:"price,omitempty"`
	Quantity   int    `json:"quantity"`
}

// Order is a placed order owned by the backend.
type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	TableID    *int64      `json:"tableId,omitempty"`
	OrderType  OrderType   `json:"orderType"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"orderItems"`
	TotalPrice int64       `json:"totalPrice"`
	CreatedAt  time.Time   `json:"createdAt"`
}

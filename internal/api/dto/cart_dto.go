package dto

import "github.com/Leerm14/restaurantmanagement/internal/domain"

// AddCartItemRequest carries the menu item snapshot to add.
type AddCartItemRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image,omitempty"`
}

// UpdateCartQuantityRequest sets a line's quantity.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest converts the cart into a backend order.
type CheckoutRequest struct {
	OrderType domain.OrderType `json:"orderType"`
}

// CartResponse is the cart plus derived totals.
type CartResponse struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
}

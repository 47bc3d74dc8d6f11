package dto

import "github.com/Leerm14/restaurantmanagement/internal/domain"

// AccountRequest creates or updates a backend account from the admin UI.
type AccountRequest struct {
	Name  string      `json:"name"`
	Email string      `json:"email,omitempty"`
	Phone string      `json:"phone,omitempty"`
	Role  domain.Role `json:"role"`
}

// MenuItemRequest creates or updates a dish.
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
	CategoryID  int64  `json:"categoryId"`
	Available   bool   `json:"available"`
}

// CategoryRequest creates a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// TableRequest creates or updates a dining table.
type TableRequest struct {
	TableNumber int    `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location,omitempty"`
}

// StatusRequest carries a bare status transition.
type StatusRequest struct {
	Status string `json:"status"`
}

// CreatePaymentRequest starts settlement of an order.
type CreatePaymentRequest struct {
	OrderID int64                `json:"orderId"`
	Amount  int64                `json:"amount"`
	Method  domain.PaymentMethod `json:"method"`
}

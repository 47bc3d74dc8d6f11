package domain

import "time"

// PaymentStatus enumerates payment states owned by the backend.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// PaymentMethod identifies how a payment is settled.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodTransfer PaymentMethod = "Transfer"
)

// Payment tracks settlement of an order.
type Payment struct {
	ID        int64         `json:"id"`
	OrderID   int64         `json:"orderId"`
	Amount    int64         `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RevenueReport aggregates completed payments over a period.
type RevenueReport struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	TotalRevenue int64     `json:"totalRevenue"`
	PaymentCount int       `json:"paymentCount"`
}

// MonthlyOrderStat is one month of order counts for the reports page.
type MonthlyOrderStat struct {
	Month      string `json:"month"`
	OrderCount int    `json:"orderCount"`
	Revenue    int64  `json:"revenue"`
}

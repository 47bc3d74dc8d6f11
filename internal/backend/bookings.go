package backend

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// BookingRequest is the payload for booking creation and updates.
type BookingRequest struct {
	UserID      int64     `json:"userId"`
	TableID     int64     `json:"tableId"`
	Guests      int       `json:"guests"`
	Phone       string    `json:"phone,omitempty"`
	BookingTime time.Time `json:"bookingTime"`
	Note        string    `json:"note,omitempty"`
}

// ListBookings returns bookings, optionally filtered by status or date.
func (c *Client) ListBookings(ctx context.Context, status domain.BookingStatus, date string) ([]domain.Booking, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if date != "" {
		query.Set("date", date)
	}
	var bookings []domain.Booking
	if err := c.get(ctx, "/api/bookings", query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsByUser returns a user's bookings.
func (c *Client) BookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, fmt.Sprintf("/api/bookings/user/%d", userID), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsByPhone searches bookings by contact phone.
func (c *Client) BookingsByPhone(ctx context.Context, phone string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/api/bookings/phone/"+url.PathEscape(phone), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsByTable returns bookings attached to a table.
func (c *Client) BookingsByTable(ctx context.Context, tableID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, fmt.Sprintf("/api/bookings/table/%d", tableID), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking reserves a table.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.post(ctx, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking mutates a booking.
func (c *Client) UpdateBooking(ctx context.Context, id int64, req BookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.put(ctx, fmt.Sprintf("/api/bookings/%d", id), req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus transitions a booking's status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	path := fmt.Sprintf("/api/bookings/%d/status", id)
	return c.do(ctx, "PATCH", path, url.Values{"status": []string{string(status)}}, nil, nil)
}

// CheckInBooking marks a booking as arrived.
func (c *Client) CheckInBooking(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/api/bookings/%d/check-in", id), nil, nil)
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/bookings/%d", id))
}

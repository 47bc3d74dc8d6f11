package domain

import "time"

// BookingStatus enumerates booking lifecycle states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCheckedIn BookingStatus = "CheckedIn"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking reserves a table for a user at a point in time.
type Booking struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"userId"`
	Table       *Table        `json:"table,omitempty"`
	Guests      int           `json:"guests"`
	Phone       string        `json:"phone,omitempty"`
	BookingTime time.Time     `json:"bookingTime"`
	Status      BookingStatus `json:"status"`
	Note        string        `json:"note,omitempty"`
}

// Active reports whether the booking can back a dine-in order placed now:
// not yet closed out and scheduled from the start of today onward.
func (b Booking) Active(now time.Time) bool {
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusPending {
		return false
	}
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !b.BookingTime.Before(startOfToday)
}

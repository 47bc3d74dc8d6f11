package dto

import "time"

// CreateBookingRequest reserves a table for the current user.
type CreateBookingRequest struct {
	TableID     int64     `json:"tableId"`
	Guests      int       `json:"guests"`
	Phone       string    `json:"phone,omitempty"`
	BookingTime time.Time `json:"bookingTime"`
	Note        string    `json:"note,omitempty"`
}

// UpdateSettingsRequest mutates a preference value.
type UpdateSettingsRequest struct {
	Theme    string `json:"theme,omitempty"`
	Language string `json:"language,omitempty"`
}

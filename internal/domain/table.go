package domain

// TableStatus enumerates dining table states as the backend reports them.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "Available"
	TableStatusBooked    TableStatus = "Booked"
	TableStatusUsed      TableStatus = "Used"
	TableStatusCleaning  TableStatus = "Cleaning"
)

// Table is a dining table.
type Table struct {
	ID          int64       `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Capacity    int         `json:"capacity"`
	Status      TableStatus `json:"status"`
	Location    string      `json:"location,omitempty"`
}

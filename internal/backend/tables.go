package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// TableRequest is the payload for table creation and updates.
type TableRequest struct {
	TableNumber int    `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location,omitempty"`
}

// ListTables returns tables, optionally filtered by status.
func (c *Client) ListTables(ctx context.Context, status domain.TableStatus) ([]domain.Table, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var tables []domain.Table
	if err := c.get(ctx, "/api/tables", query, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// TableAvailability returns tables with their status for a booking slot.
func (c *Client) TableAvailability(ctx context.Context, at time.Time, guests int) ([]domain.Table, error) {
	query := url.Values{}
	query.Set("time", at.Format(time.RFC3339))
	if guests > 0 {
		query.Set("guests", strconv.Itoa(guests))
	}
	var tables []domain.Table
	if err := c.get(ctx, "/api/tables/availability", query, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// TableCount returns the number of tables.
func (c *Client) TableCount(ctx context.Context) (int, error) {
	var result struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/api/tables/count", nil, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}

// CreateTable adds a table.
func (c *Client) CreateTable(ctx context.Context, req TableRequest) (*domain.Table, error) {
	var table domain.Table
	if err := c.post(ctx, "/api/tables", req, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateTable mutates a table.
func (c *Client) UpdateTable(ctx context.Context, id int64, req TableRequest) (*domain.Table, error) {
	var table domain.Table
	if err := c.put(ctx, fmt.Sprintf("/api/tables/%d", id), req, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// UpdateTableStatus transitions a table's status.
func (c *Client) UpdateTableStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	path := fmt.Sprintf("/api/tables/%d/status", id)
	return c.do(ctx, "PATCH", path, url.Values{"status": []string{string(status)}}, nil, nil)
}

// DeleteTable removes a table.
func (c *Client) DeleteTable(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/tables/%d", id))
}

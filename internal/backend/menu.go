package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// MenuFilter narrows menu listings.
type MenuFilter struct {
	CategoryID int64
	Search     string
	Page       int
	PageSize   int
}

func (f MenuFilter) values() url.Values {
	query := url.Values{}
	if f.CategoryID > 0 {
		query.Set("categoryId", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Page > 0 {
		query.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		query.Set("size", strconv.Itoa(f.PageSize))
	}
	return query
}

// MenuItemRequest is the payload for menu creation and updates.
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
	CategoryID  int64  `json:"categoryId"`
	Available   bool   `json:"available"`
}

// ListMenu returns menu items matching the filter.
func (c *Client) ListMenu(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := c.get(ctx, "/api/menu", filter.values(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// BestSellingMenu returns the highlighted best sellers.
func (c *Client) BestSellingMenu(ctx context.Context, limit int) ([]domain.MenuItem, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var items []domain.MenuItem
	if err := c.get(ctx, "/api/menu/best-selling", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MenuPageCount returns the page count for the filter.
func (c *Client) MenuPageCount(ctx context.Context, filter MenuFilter) (int, error) {
	var result struct {
		PageCount int `json:"pageCount"`
	}
	if err := c.get(ctx, "/api/menu/page-count", filter.values(), &result); err != nil {
		return 0, err
	}
	return result.PageCount, nil
}

// CreateMenuItem adds a dish.
func (c *Client) CreateMenuItem(ctx context.Context, req MenuItemRequest) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := c.post(ctx, "/api/menu", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem mutates a dish.
func (c *Client) UpdateMenuItem(ctx context.Context, id int64, req MenuItemRequest) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := c.put(ctx, fmt.Sprintf("/api/menu/%d", id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMenuItem removes a dish.
func (c *Client) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/menu/%d", id))
}

// ListCategories returns all menu categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	if err := c.post(ctx, "/api/categories", map[string]string{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/categories/%d", id))
}

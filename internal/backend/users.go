package backend

import (
	"context"
	"fmt"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// CreateUserRequest is the backend payload for account creation.
type CreateUserRequest struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone,omitempty"`
	Role  domain.Role `json:"role"`
}

// UpdateUserRequest carries profile mutations.
type UpdateUserRequest struct {
	Name  string      `json:"name,omitempty"`
	Phone string      `json:"phone,omitempty"`
	Role  domain.Role `json:"role,omitempty"`
}

// CurrentUser fetches the profile bound to the request credential.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all accounts.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UsersByRole filters accounts by role.
func (c *Client) UsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, fmt.Sprintf("/api/users/role/%s", role), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a backend profile.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	var user domain.User
	if err := c.post(ctx, "/api/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser mutates a backend profile.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	var user domain.User
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

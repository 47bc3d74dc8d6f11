package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// AdminHandler serves the admin pages: accounts, menu management, tables,
// bookings and revenue reports.
type AdminHandler struct {
	backend *backend.Client
}

// NewAdminHandler constructs handler.
func NewAdminHandler(client *backend.Client) *AdminHandler {
	return &AdminHandler{backend: client}
}

// Accounts GET /admin/accounts, optionally filtered by role.
func (h *AdminHandler) Accounts(c *fiber.Ctx) error {
	if role := c.Query("role"); role != "" {
		if !domain.Role(role).Valid() {
			return apperrors.NewValidationError("unknown role", nil)
		}
		users, err := h.backend.UsersByRole(c.Context(), domain.Role(role))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": users})
	}

	users, err := h.backend.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}

// CreateAccount POST /admin/accounts.
func (h *AdminHandler) CreateAccount(c *fiber.Ctx) error {
	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || !req.Role.Valid() {
		return apperrors.NewValidationError("name, email and role required", nil)
	}

	user, err := h.backend.CreateUser(c.Context(), backend.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": user})
}

// UpdateAccount PUT /admin/accounts/:id.
func (h *AdminHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Role != "" && !req.Role.Valid() {
		return apperrors.NewValidationError("unknown role", nil)
	}

	user, err := h.backend.UpdateUser(c.Context(), id, backend.UpdateUserRequest{
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

// DeleteAccount DELETE /admin/accounts/:id.
func (h *AdminHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateMenuItem POST /admin/menu.
func (h *AdminHandler) CreateMenuItem(c *fiber.Ctx) error {
	req, err := parseMenuItem(c)
	if err != nil {
		return err
	}
	item, err := h.backend.CreateMenuItem(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}

// UpdateMenuItem PUT /admin/menu/:id.
func (h *AdminHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	req, err := parseMenuItem(c)
	if err != nil {
		return err
	}
	item, err := h.backend.UpdateMenuItem(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// DeleteMenuItem DELETE /admin/menu/:id.
func (h *AdminHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.DeleteMenuItem(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateCategory POST /admin/categories.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	category, err := h.backend.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": category})
}

// DeleteCategory DELETE /admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.DeleteCategory(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Tables GET /admin/tables.
func (h *AdminHandler) Tables(c *fiber.Ctx) error {
	tables, err := h.backend.ListTables(c.Context(), domain.TableStatus(c.Query("status")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tables})
}

// CreateTable POST /admin/tables.
func (h *AdminHandler) CreateTable(c *fiber.Ctx) error {
	var req dto.TableRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TableNumber <= 0 || req.Capacity <= 0 {
		return apperrors.NewValidationError("tableNumber and capacity required", nil)
	}
	table, err := h.backend.CreateTable(c.Context(), backend.TableRequest{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": table})
}

// UpdateTable PUT /admin/tables/:id.
func (h *AdminHandler) UpdateTable(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.TableRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	table, err := h.backend.UpdateTable(c.Context(), id, backend.TableRequest{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": table})
}

// DeleteTable DELETE /admin/tables/:id.
func (h *AdminHandler) DeleteTable(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.DeleteTable(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Bookings GET /admin/bookings with optional status/date filters, or a
// phone search when ?phone= is present.
func (h *AdminHandler) Bookings(c *fiber.Ctx) error {
	if phone := c.Query("phone"); phone != "" {
		bookings, err := h.backend.BookingsByPhone(c.Context(), phone)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": bookings})
	}

	bookings, err := h.backend.ListBookings(c.Context(),
		domain.BookingStatus(c.Query("status")), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookings})
}

// UpdateBookingStatus PATCH /admin/bookings/:id/status.
func (h *AdminHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	if err := h.backend.UpdateBookingStatus(c.Context(), id, domain.BookingStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// CheckInBooking POST /admin/bookings/:id/check-in.
func (h *AdminHandler) CheckInBooking(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.CheckInBooking(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"checkedIn": true}})
}

// DeleteBooking DELETE /admin/bookings/:id.
func (h *AdminHandler) DeleteBooking(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.backend.DeleteBooking(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// RevenueReport GET /admin/reports/revenue?from=&to= (YYYY-MM-DD, defaults
// to the current month).
func (h *AdminHandler) RevenueReport(c *fiber.Ctx) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apperrors.NewValidationError("from must be YYYY-MM-DD", nil)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apperrors.NewValidationError("to must be YYYY-MM-DD", nil)
		}
		to = parsed
	}

	report, err := h.backend.RevenueReport(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": report})
}

// MonthlyOrderStats GET /admin/reports/orders-monthly?year=.
func (h *AdminHandler) MonthlyOrderStats(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year"))
	stats, err := h.backend.MonthlyOrderStats(c.Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// TableCount GET /admin/reports/table-count.
func (h *AdminHandler) TableCount(c *fiber.Ctx) error {
	count, err := h.backend.TableCount(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"count": count}})
}

func parseMenuItem(c *fiber.Ctx) (backend.MenuItemRequest, error) {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return backend.MenuItemRequest{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Price <= 0 || req.CategoryID <= 0 {
		return backend.MenuItemRequest{}, apperrors.NewValidationError("name, price and categoryId required", nil)
	}
	return backend.MenuItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Available:   req.Available,
	}, nil
}

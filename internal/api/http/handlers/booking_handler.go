package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/api/dto"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

// BookingHandler serves the customer booking page.
type BookingHandler struct {
	sessions *session.Store
	backend  *backend.Client
}

// NewBookingHandler constructs handler.
func NewBookingHandler(sessions *session.Store, client *backend.Client) *BookingHandler {
	return &BookingHandler{sessions: sessions, backend: client}
}

// Availability GET /booking/availability lists tables with status for the
// requested slot. Only Available tables can be selected; the rest render
// disabled with their current status.
func (h *BookingHandler) Availability(c *fiber.Ctx) error {
	at := time.Now()
	if raw := c.Query("time"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return apperrors.NewValidationError("time must be RFC3339", nil)
		}
		at = parsed
	}
	guests, _ := strconv.Atoi(c.Query("guests"))

	tables, err := h.backend.TableAvailability(c.Context(), at, guests)
	if err != nil {
		return err
	}

	available := 0
	for _, table := range tables {
		if table.Status == domain.TableStatusAvailable {
			available++
		}
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"tables":         tables,
		"availableCount": available,
	}})
}

// Create POST /booking reserves a table for the current user.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	snap := h.sessions.Snapshot()

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TableID <= 0 || req.Guests <= 0 || req.BookingTime.IsZero() {
		return apperrors.NewValidationError("tableId, guests and bookingTime required", nil)
	}

	booking, err := h.backend.CreateBooking(c.Context(), backend.BookingRequest{
		UserID:      snap.UserID,
		TableID:     req.TableID,
		Guests:      req.Guests,
		Phone:       req.Phone,
		BookingTime: req.BookingTime,
		Note:        req.Note,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": booking})
}

// Mine GET /booking/mine lists the current user's bookings.
func (h *BookingHandler) Mine(c *fiber.Ctx) error {
	snap := h.sessions.Snapshot()
	bookings, err := h.backend.BookingsByUser(c.Context(), snap.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookings})
}

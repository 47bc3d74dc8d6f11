package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/backend"
)

// MenuHandler serves the customer-facing menu pages.
type MenuHandler struct {
	backend *backend.Client
}

// NewMenuHandler constructs handler.
func NewMenuHandler(client *backend.Client) *MenuHandler {
	return &MenuHandler{backend: client}
}

func menuFilterFromQuery(c *fiber.Ctx) backend.MenuFilter {
	categoryID, _ := strconv.ParseInt(c.Query("categoryId"), 10, 64)
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return backend.MenuFilter{
		CategoryID: categoryID,
		Search:     c.Query("search"),
		Page:       page,
		PageSize:   size,
	}
}

// List GET /menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.backend.ListMenu(c.Context(), menuFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// BestSelling GET /menu/best-selling.
func (h *MenuHandler) BestSelling(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.backend.BestSellingMenu(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// PageCount GET /menu/page-count.
func (h *MenuHandler) PageCount(c *fiber.Ctx) error {
	count, err := h.backend.MenuPageCount(c.Context(), menuFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"pageCount": count}})
}

// Categories GET /menu/categories.
func (h *MenuHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.backend.ListCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categories})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/api/http/handlers"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/guard"
	"github.com/Leerm14/restaurantmanagement/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Sessions *session.Store
	Health   *handlers.HealthHandler
	Auth     *handlers.SessionHandler
	Menu     *handlers.MenuHandler
	Cart     *handlers.CartHandler
	Booking  *handlers.BookingHandler
	Orders   *handlers.OrdersHandler
	Payments *handlers.PaymentsHandler
	Account  *handlers.AccountHandler
	Settings *handlers.SettingsHandler
	Staff    *handlers.StaffHandler
	Admin    *handlers.AdminHandler
}

// RegisterRoutes wires the role-scoped shells: unauthenticated-only auth
// routes, general authenticated pages, the staff shell ({staff, admin})
// and the admin shell ({admin}). Unmatched paths land on /404.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public pages and auth flows bypass the guard.
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/home", fiber.StatusFound) })
	app.Get("/home", cfg.Menu.BestSelling)
	app.Get("/404", notFound)
	app.Get("/signin", signInEntry)
	app.Get("/reset-password", resetPasswordEntry)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.SignUp)
	authGroup.Post("/signin", cfg.Auth.SignIn)
	authGroup.Post("/signout", cfg.Auth.SignOut)
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)
	authGroup.Post("/phone/link", cfg.Auth.PhoneLink)
	authGroup.Post("/phone/confirm", cfg.Auth.PhoneConfirm)

	app.Post("/payment/payment-success", cfg.Payments.Success)
	app.Post("/payment/payment-failed", cfg.Payments.Failed)

	// General authenticated pages: any role.
	authed := guard.Protect(cfg.Sessions)

	menu := app.Group("/menu", authed)
	menu.Get("/", cfg.Menu.List)
	menu.Get("/best-selling", cfg.Menu.BestSelling)
	menu.Get("/page-count", cfg.Menu.PageCount)
	menu.Get("/categories", cfg.Menu.Categories)

	cartGroup := app.Group("/cart", authed)
	cartGroup.Get("/", cfg.Cart.Get)
	cartGroup.Delete("/", cfg.Cart.Clear)
	cartGroup.Post("/items", cfg.Cart.AddItem)
	cartGroup.Patch("/items/:id", cfg.Cart.UpdateQuantity)
	cartGroup.Delete("/items/:id", cfg.Cart.RemoveItem)
	cartGroup.Post("/checkout", cfg.Cart.Checkout)

	booking := app.Group("/booking", authed)
	booking.Get("/availability", cfg.Booking.Availability)
	booking.Get("/mine", cfg.Booking.Mine)
	booking.Post("/", cfg.Booking.Create)

	orders := app.Group("/order-history", authed)
	orders.Get("/", cfg.Orders.History)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Patch("/:id/cancel", cfg.Orders.Cancel)

	app.Post("/payments", authed, cfg.Payments.Create)

	account := app.Group("/account", authed)
	account.Get("/", cfg.Account.Get)
	account.Put("/", cfg.Account.Update)

	settings := app.Group("/settings", authed)
	settings.Get("/", cfg.Settings.Get)
	settings.Put("/", cfg.Settings.Update)

	// Staff shell.
	staff := app.Group("/staff", guard.Protect(cfg.Sessions, domain.RoleStaff, domain.RoleAdmin))
	staff.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/staff/tables", fiber.StatusFound) })
	staff.Get("/tables", cfg.Staff.Tables)
	staff.Patch("/tables/:id/status", cfg.Staff.UpdateTableStatus)
	staff.Get("/tables/:id/orders", cfg.Staff.TableOrders)
	staff.Get("/orders", cfg.Staff.Orders)
	staff.Get("/orders/search", cfg.Staff.SearchOrders)
	staff.Patch("/orders/:id/status", cfg.Staff.UpdateOrderStatus)
	staff.Get("/payments/pending", cfg.Staff.PendingPayments)
	staff.Patch("/payments/:id/confirm", cfg.Staff.ConfirmPayment)
	staff.All("/*", notFoundRedirect)

	// Admin shell.
	admin := app.Group("/admin", guard.Protect(cfg.Sessions, domain.RoleAdmin))
	admin.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/admin/accounts", fiber.StatusFound) })
	admin.Get("/accounts", cfg.Admin.Accounts)
	admin.Post("/accounts", cfg.Admin.CreateAccount)
	admin.Put("/accounts/:id", cfg.Admin.UpdateAccount)
	admin.Delete("/accounts/:id", cfg.Admin.DeleteAccount)
	admin.Post("/menu", cfg.Admin.CreateMenuItem)
	admin.Put("/menu/:id", cfg.Admin.UpdateMenuItem)
	admin.Delete("/menu/:id", cfg.Admin.DeleteMenuItem)
	admin.Post("/categories", cfg.Admin.CreateCategory)
	admin.Delete("/categories/:id", cfg.Admin.DeleteCategory)
	admin.Get("/tables", cfg.Admin.Tables)
	admin.Post("/tables", cfg.Admin.CreateTable)
	admin.Put("/tables/:id", cfg.Admin.UpdateTable)
	admin.Delete("/tables/:id", cfg.Admin.DeleteTable)
	admin.Get("/bookings", cfg.Admin.Bookings)
	admin.Patch("/bookings/:id/status", cfg.Admin.UpdateBookingStatus)
	admin.Post("/bookings/:id/check-in", cfg.Admin.CheckInBooking)
	admin.Delete("/bookings/:id", cfg.Admin.DeleteBooking)
	admin.Get("/reports/revenue", cfg.Admin.RevenueReport)
	admin.Get("/reports/orders-monthly", cfg.Admin.MonthlyOrderStats)
	admin.Get("/reports/table-count", cfg.Admin.TableCount)
	admin.All("/*", notFoundRedirect)

	app.All("/*", notFoundRedirect)
}

// signInEntry is the landing target for guard redirects. It tells the
// client which auth endpoints establish a session.
func signInEntry(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{
		"signIn":        "/auth/signin",
		"signUp":        "/auth/signup",
		"resetPassword": "/reset-password",
	}})
}

func resetPasswordEntry(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{
		"resetPassword": "/auth/reset-password",
	}})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{"code": "NOT_FOUND", "message": "page not found"},
	})
}

func notFoundRedirect(c *fiber.Ctx) error {
	return c.Redirect("/404", fiber.StatusFound)
}

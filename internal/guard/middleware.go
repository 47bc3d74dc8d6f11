package guard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/session"
)

// Protect gates a route group behind the session store. An empty allow
// list admits any authenticated role. While the initial identity
// resolution is still in flight the handler answers 503 with Retry-After
// instead of redirecting, so callers never see a redirect flash before
// the session resolves.
func Protect(sessions *session.Store, allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := sessions.Snapshot()
		if snap.Loading {
			c.Set("Retry-After", "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "resolving-session",
			})
		}

		switch Decide(snap.Authenticated, snap.Role, allowed) {
		case RedirectToSignIn:
			return c.Redirect(SignInPath, fiber.StatusFound)
		case RedirectToHome:
			return c.Redirect(HomePath, fiber.StatusFound)
		}
		return c.Next()
	}
}

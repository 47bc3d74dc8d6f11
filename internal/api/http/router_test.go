package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leerm14/restaurantmanagement/internal/api/http/handlers"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/cart"
	"github.com/Leerm14/restaurantmanagement/internal/config"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/events"
	"github.com/Leerm14/restaurantmanagement/internal/identity"
	"github.com/Leerm14/restaurantmanagement/internal/observability"
	"github.com/Leerm14/restaurantmanagement/internal/prefs"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	"github.com/Leerm14/restaurantmanagement/internal/storage"
)

// testEnv wires a full app against a fake backend. The backend answers
// /api/users/me with the configured role and every other path with an
// empty list.
type testEnv struct {
	app      *fiber.App
	sessions *session.Store
	provider *identity.LocalProvider
}

func newTestEnv(t *testing.T, role domain.Role) *testEnv {
	t.Helper()
	return newTestEnvWithBackend(t, role, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
}

// newTestEnvWithBackend lets a test flesh out backend responses beyond
// the profile endpoint, which is always answered with the given role.
func newTestEnvWithBackend(t *testing.T, role domain.Role, backendHandler http.HandlerFunc) *testEnv {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/users/me" {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"id":1,"name":"T","email":"t@t.t","role":%q}`, role)
			return
		}
		backendHandler(w, r)
	}))
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	store := storage.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()

	provider := identity.NewLocalProvider(config.IdentityConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 5,
		BcryptCost:      bcrypt.MinCost,
		MinPasswordLen:  6,
	}, store, dispatcher, logger)

	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 5}, provider, logger)
	sessions := session.NewStore(provider, client, dispatcher, logger)

	cartStore := cart.NewStore(context.Background(), store, logger)
	prefStore := prefs.NewStore(context.Background(), store, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Sessions: sessions,
		Health:   handlers.NewHealthHandler("test", "0.0.0", store),
		Auth:     handlers.NewSessionHandler(provider, sessions, client, logger),
		Menu:     handlers.NewMenuHandler(client),
		Cart:     handlers.NewCartHandler(cartStore, sessions, prefStore, client),
		Booking:  handlers.NewBookingHandler(sessions, client),
		Orders:   handlers.NewOrdersHandler(sessions, client),
		Payments: handlers.NewPaymentsHandler(client, logger),
		Account:  handlers.NewAccountHandler(sessions, client),
		Settings: handlers.NewSettingsHandler(prefStore),
		Staff:    handlers.NewStaffHandler(client),
		Admin:    handlers.NewAdminHandler(client),
	})

	return &testEnv{app: app, sessions: sessions, provider: provider}
}

// signIn establishes an authenticated session with the env's role.
func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := e.provider.SignUp(ctx, "t@t.t", "secret1")
	require.NoError(t, err)
	require.NoError(t, e.sessions.Login(ctx))
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProtectedRouteWhileSessionLoading(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)

	resp := env.get(t, "/menu")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}

func TestUnauthenticatedRedirectsToSignIn(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)
	env.sessions.Start(context.Background())

	for _, path := range []string{"/menu", "/cart", "/booking/mine", "/settings", "/staff/tables", "/admin/accounts"} {
		resp := env.get(t, path)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/signin", resp.Header.Get("Location"), path)
	}
}

func TestUserRoleAccess(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)
	env.signIn(t)

	resp := env.get(t, "/menu")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.get(t, "/cart")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Users are bounced home from the staff and admin shells.
	resp = env.get(t, "/staff/tables")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/home", resp.Header.Get("Location"))

	resp = env.get(t, "/admin/accounts")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/home", resp.Header.Get("Location"))
}

func TestStaffRoleAccess(t *testing.T) {
	env := newTestEnv(t, domain.RoleStaff)
	env.signIn(t)

	resp := env.get(t, "/staff/tables")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.get(t, "/staff/orders")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Staff is not admin.
	resp = env.get(t, "/admin/accounts")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/home", resp.Header.Get("Location"))
}

func TestAdminRoleAccess(t *testing.T) {
	env := newTestEnv(t, domain.RoleAdmin)
	env.signIn(t)

	resp := env.get(t, "/admin/accounts")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Admin is admitted to the staff shell as well.
	resp = env.get(t, "/staff/tables")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestShellIndexRedirects(t *testing.T) {
	env := newTestEnv(t, domain.RoleAdmin)
	env.signIn(t)

	resp := env.get(t, "/staff")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/staff/tables", resp.Header.Get("Location"))

	resp = env.get(t, "/admin")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/accounts", resp.Header.Get("Location"))
}

func TestUnmatchedPathRedirectsTo404(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)
	env.sessions.Start(context.Background())

	resp := env.get(t, "/no-such-page")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/404", resp.Header.Get("Location"))

	resp = env.get(t, "/404")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPublicRoutesBypassGuard(t *testing.T) {
	env := newTestEnv(t, domain.RoleUser)
	env.sessions.Start(context.Background())

	resp := env.get(t, "/home")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.get(t, "/signin")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.get(t, "/health/live")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.get(t, "/health/ready")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

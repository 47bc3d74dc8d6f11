package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

type orderBackend struct {
	bookings []domain.Booking
	orders   []backend.CreateOrderRequest
}

func (b *orderBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/bookings/user/1":
			_ = json.NewEncoder(w).Encode(b.bookings)
		case r.Method == http.MethodPost && r.URL.Path == "/api/orders":
			var req backend.CreateOrderRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.orders = append(b.orders, req)
			fmt.Fprintf(w, `{"id":42,"orderType":%q,"status":"Pending"}`, req.OrderType)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) addToCart(t *testing.T, id int64, name string, price int64) {
	t.Helper()
	resp := e.postJSON(t, "/cart/items", fiber.Map{"id": id, "name": name, "price": price})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	fake := &orderBackend{}
	env := newTestEnvWithBackend(t, domain.RoleUser, fake.handler())
	env.signIn(t)

	resp := env.postJSON(t, "/cart/checkout", fiber.Map{"orderType": "Takeaway"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "Giỏ hàng trống, vui lòng thêm món", errObj["message"])
}

func TestCheckoutTakeaway(t *testing.T) {
	fake := &orderBackend{}
	env := newTestEnvWithBackend(t, domain.RoleUser, fake.handler())
	env.signIn(t)

	env.addToCart(t, 1, "Pho Bo", 50000)
	env.addToCart(t, 1, "Pho Bo", 50000)
	env.addToCart(t, 2, "Goi Cuon", 30000)

	resp := env.postJSON(t, "/cart/checkout", fiber.Map{"orderType": "Takeaway"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Đặt món thành công!", body["message"])

	require.Len(t, fake.orders, 1)
	placed := fake.orders[0]
	assert.Equal(t, int64(1), placed.UserID)
	assert.Equal(t, domain.OrderTypeTakeaway, placed.OrderType)
	assert.Nil(t, placed.TableID)
	require.Len(t, placed.OrderItems, 2)
	assert.Equal(t, 2, placed.OrderItems[0].Quantity)
	assert.Equal(t, 1, placed.OrderItems[1].Quantity)

	// A successful checkout empties the cart.
	cartResp := env.get(t, "/cart")
	cartBody := decodeBody(t, cartResp)
	data := cartBody["data"].(map[string]any)
	assert.Equal(t, float64(0), data["totalItems"])
}

func TestCheckoutDineinWithoutBookingConflicts(t *testing.T) {
	fake := &orderBackend{}
	env := newTestEnvWithBackend(t, domain.RoleUser, fake.handler())
	env.signIn(t)
	env.addToCart(t, 1, "Pho Bo", 50000)

	resp := env.postJSON(t, "/cart/checkout", fiber.Map{"orderType": "Dinein"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	details := errObj["details"].(map[string]any)
	assert.Equal(t, "/booking", details["redirect"])
	assert.Empty(t, fake.orders)

	// The cart survives a rejected checkout.
	cartResp := env.get(t, "/cart")
	cartBody := decodeBody(t, cartResp)
	data := cartBody["data"].(map[string]any)
	assert.Equal(t, float64(1), data["totalItems"])
}

func TestCheckoutDineinWithActiveBooking(t *testing.T) {
	fake := &orderBackend{
		bookings: []domain.Booking{
			{
				ID:          8,
				UserID:      1,
				Status:      domain.BookingStatusConfirmed,
				BookingTime: time.Now().Add(time.Hour),
				Table:       &domain.Table{ID: 4},
			},
		},
	}
	env := newTestEnvWithBackend(t, domain.RoleUser, fake.handler())
	env.signIn(t)
	env.addToCart(t, 1, "Pho Bo", 50000)

	resp := env.postJSON(t, "/cart/checkout", fiber.Map{"orderType": "Dinein"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, fake.orders, 1)
	placed := fake.orders[0]
	assert.Equal(t, domain.OrderTypeDinein, placed.OrderType)
	require.NotNil(t, placed.TableID)
	assert.Equal(t, int64(4), *placed.TableID)
}

func TestCheckoutStaleBookingRejected(t *testing.T) {
	fake := &orderBackend{
		bookings: []domain.Booking{
			{
				ID:          8,
				UserID:      1,
				Status:      domain.BookingStatusConfirmed,
				BookingTime: time.Now().AddDate(0, 0, -2),
				Table:       &domain.Table{ID: 4},
			},
		},
	}
	env := newTestEnvWithBackend(t, domain.RoleUser, fake.handler())
	env.signIn(t)
	env.addToCart(t, 1, "Pho Bo", 50000)

	resp := env.postJSON(t, "/cart/checkout", fiber.Map{"orderType": "Dinein"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Empty(t, fake.orders)
}

func TestCheckoutInvalidOrderType(t *testing.T) {
	fake := &orderBackend{}
	env := newTestEnvWithBackend(t, domain.RoleUser, fake.handler())
	env.signIn(t)
	env.addToCart(t, 1, "Pho Bo", 50000)

	resp := env.postJSON(t, "/cart/checkout", fiber.Map{"orderType": "Delivery"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

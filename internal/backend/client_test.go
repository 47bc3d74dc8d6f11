package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/config"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/identity"
	apperrors "github.com/Leerm14/restaurantmanagement/pkg/util"
)

type stubTokens struct {
	token string
	err   error
}

func (s stubTokens) Token(context.Context) (string, error) {
	return s.token, s.err
}

func newTestClient(t *testing.T, tokens identity.TokenSource, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 5}, tokens, zap.NewNop())
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, stubTokens{token: "tok-123"}, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"A","email":"a@b.c","role":"user"}`))
	})

	_, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoCredentialSendsNoAuthorizationHeader(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	c := newTestClient(t, stubTokens{err: identity.ErrNoCredential}, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListMenu(context.Background(), MenuFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader)
}

func TestTokenFailureAbortsRequest(t *testing.T) {
	var reached bool
	c := newTestClient(t, stubTokens{err: errors.New("keychain locked")}, func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	assert.False(t, reached, "request must not reach the backend when token minting fails")
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusBadRequest, "VALIDATION_FAILED"},
		{http.StatusUnauthorized, "UNAUTHORIZED"},
		{http.StatusForbidden, "FORBIDDEN"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusConflict, "CONFLICT"},
		{http.StatusInternalServerError, "UPSTREAM_ERROR"},
		{http.StatusBadGateway, "UPSTREAM_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.wantCode, func(t *testing.T) {
			c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message":"upstream says no"}`))
			})

			_, err := c.CurrentUser(context.Background())
			require.Error(t, err)

			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		})
	}
}

func TestUpstreamMessageSurfaced(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"table already booked"}`))
	})

	_, err := c.CreateBooking(context.Background(), BookingRequest{})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "table already booked", domainErr.Message)
}

func TestMenuFilterQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListMenu(context.Background(), MenuFilter{
		Page:       2,
		Search:     "pho",
		CategoryID: 3,
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "search=pho")
	assert.Contains(t, gotQuery, "categoryId=3")
}

func TestCreateOrderBody(t *testing.T) {
	var gotPath, gotMethod string
	c := newTestClient(t, stubTokens{token: "t"}, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":11,"orderType":"Dinein","status":"Pending"}`))
	})

	order, err := c.CreateOrder(context.Background(), CreateOrderRequest{
		UserID:    5,
		OrderType: domain.OrderTypeDinein,
		OrderItems: []OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/orders", gotPath)
	assert.Equal(t, int64(11), order.ID)
	assert.Equal(t, domain.OrderTypeDinein, order.OrderType)
}

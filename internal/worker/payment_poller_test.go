package worker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/config"
	"github.com/Leerm14/restaurantmanagement/internal/events"
)

func TestPollerPublishesPendingPayments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/status/Pending", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"orderId":2,"amount":50000,"status":"Pending"}]`))
	}))
	t.Cleanup(server.Close)

	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 5}, nil, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()

	var mu sync.Mutex
	var got []events.Event
	dispatcher.Subscribe(events.EventPaymentPending, func(_ context.Context, e events.Event) error {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
		return nil
	})

	p := NewPaymentPoller(config.PollerConfig{Enabled: true, IntervalSeconds: 1}, client, dispatcher, zap.NewNop())
	p.poll(context.Background())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(events.PaymentPendingPayload)
	require.True(t, ok)
	require.Len(t, payload.Payments, 1)
	assert.Equal(t, int64(2), payload.Payments[0].OrderID)
}

func TestPollerSkipsEmptyAndFailedPolls(t *testing.T) {
	var status int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status >= 400 {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 5}, nil, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()

	published := 0
	dispatcher.Subscribe(events.EventPaymentPending, func(context.Context, events.Event) error {
		published++
		return nil
	})

	p := NewPaymentPoller(config.PollerConfig{IntervalSeconds: 1}, client, dispatcher, zap.NewNop())

	p.poll(context.Background())
	status = http.StatusInternalServerError
	p.poll(context.Background())

	assert.Zero(t, published)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := backend.NewClient(config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 5}, nil, zap.NewNop())
	p := NewPaymentPoller(config.PollerConfig{IntervalSeconds: 1}, client, events.NewInMemoryDispatcher(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
}

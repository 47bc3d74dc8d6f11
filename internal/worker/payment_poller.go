package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/config"
	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/events"
)

// PaymentPoller lists pending payments from the backend on a fixed
// interval and publishes them for staff-facing consumers. The loop stops
// when its context is cancelled.
type PaymentPoller struct {
	backend    *backend.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
	interval   time.Duration
}

// NewPaymentPoller builds the poller.
func NewPaymentPoller(cfg config.PollerConfig, client *backend.Client, dispatcher events.Dispatcher, logger *zap.Logger) *PaymentPoller {
	return &PaymentPoller{
		backend:    client,
		dispatcher: dispatcher,
		logger:     logger,
		interval:   cfg.Interval(),
	}
}

// Run polls until ctx is cancelled.
func (p *PaymentPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("payment poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *PaymentPoller) poll(ctx context.Context) {
	payments, err := p.backend.PaymentsByStatus(ctx, domain.PaymentStatusPending)
	if err != nil {
		p.logger.Warn("pending payment poll failed", zap.Error(err))
		return
	}
	if len(payments) == 0 {
		return
	}

	_ = p.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPaymentPending,
		Timestamp: time.Now(),
		Payload:   events.PaymentPendingPayload{Payments: payments},
	})
}

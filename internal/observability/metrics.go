package observability

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestKey identifies a request counter bucket.
type RequestKey struct {
	Path   string
	Method string
	Status int
}

// ErrorKey identifies an error counter bucket.
type ErrorKey struct {
	Path   string
	Method string
	Code   string
}

// Metrics keeps in-process request and error counters for the gateway.
type Metrics struct {
	mu       sync.Mutex
	requests map[RequestKey]int64
	errors   map[ErrorKey]int64
}

// NewMetrics returns zeroed counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[RequestKey]int64),
		errors:   make(map[ErrorKey]int64),
	}
}

// RecordRequest counts one completed request.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[RequestKey{Path: path, Method: method, Status: status}]++
}

// RecordError counts one request that ended in a domain error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[ErrorKey{Path: path, Method: method, Code: code}]++
}

// RequestCounts returns a copy of the request counters.
func (m *Metrics) RequestCounts() map[RequestKey]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[RequestKey]int64, len(m.requests))
	for k, v := range m.requests {
		out[k] = v
	}
	return out
}

// ErrorCounts returns a copy of the error counters.
func (m *Metrics) ErrorCounts() map[ErrorKey]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[ErrorKey]int64, len(m.errors))
	for k, v := range m.errors {
		out[k] = v
	}
	return out
}

// RequestLogger logs each request with latency and records request metrics.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(c.Path(), c.Method(), status, duration)
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		)
		return err
	}
}

package events

import (
	"time"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCredentialSignedIn  EventType = "credential_signed_in"
	EventCredentialRefreshed EventType = "credential_refreshed"
	EventCredentialSignedOut EventType = "credential_signed_out"
	EventPaymentPending      EventType = "payment_pending"
)

// Event represents an application event emitted by the identity provider
// or the payment poller.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CredentialPayload accompanies credential lifecycle events.
type CredentialPayload struct {
	CredentialUID string `json:"credential_uid"`
	Email         string `json:"email,omitempty"`
}

// PaymentPendingPayload accompanies payment_pending events.
type PaymentPendingPayload struct {
	Payments []domain.Payment `json:"payments"`
}

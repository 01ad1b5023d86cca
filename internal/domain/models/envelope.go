package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EnvelopeVersion is bumped on incompatible payload changes.
const EnvelopeVersion = 1

type EnvelopeKind string

const (
	KindOrderCreated   EnvelopeKind = "created"
	KindOrderCancelled EnvelopeKind = "cancelled"
)

type EnvelopeLine struct {
	ProductUUID uuid.UUID       `json:"product_uuid"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Envelope is the order lifecycle message exchanged over the broker.
// RequestUUID is the idempotency key.
type Envelope struct {
	Version     int            `json:"version"`
	RequestUUID uuid.UUID      `json:"request_uuid"`
	Kind        EnvelopeKind   `json:"kind"`
	OrderUUID   uuid.UUID      `json:"order_uuid"`
	UserUUID    uuid.UUID      `json:"user_uuid"`
	Lines       []EnvelopeLine `json:"lines"`
	CreatedAt   time.Time      `json:"created_at"`

	// ReservationRequestUUID points a cancellation at the created envelope it reverses.
	ReservationRequestUUID uuid.UUID `json:"reservation_request_uuid,omitempty"`
}

func (e *Envelope) UUID() string {
	return e.RequestUUID.String()
}

// NewOrderEnvelope builds the lifecycle message for an order from its stored items.
func NewOrderEnvelope(kind EnvelopeKind, requestUUID uuid.UUID, order *Order, now time.Time) Envelope {
	lines := make([]EnvelopeLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, EnvelopeLine{
			ProductUUID: item.ProductUUID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	env := Envelope{
		Version:     EnvelopeVersion,
		RequestUUID: requestUUID,
		Kind:        kind,
		OrderUUID:   order.OrderUUID,
		UserUUID:    order.UserUUID,
		Lines:       lines,
		CreatedAt:   now.UTC(),
	}

	if kind == KindOrderCancelled {
		env.ReservationRequestUUID = order.ReservationRequestUUID
	}

	return env
}

type ResultLine struct {
	ProductUUID uuid.UUID `json:"product_uuid"`
	Quantity    int       `json:"quantity"`
	Remaining   int       `json:"remaining"`
}

// ResultEnvelope is what the inventory side reports back for one Envelope.
type ResultEnvelope struct {
	RequestUUID uuid.UUID    `json:"request_uuid"`
	Kind        EnvelopeKind `json:"kind"`
	OrderUUID   uuid.UUID    `json:"order_uuid"`
	Success     bool         `json:"success"`
	Lines       []ResultLine `json:"lines"`
	Error       string       `json:"error,omitempty"`
	ProcessedAt time.Time    `json:"processed_at"`
}

func (r *ResultEnvelope) UUID() string {
	return r.RequestUUID.String()
}

func FailedResult(env *Envelope, reason string, now time.Time) ResultEnvelope {
	return ResultEnvelope{
		RequestUUID: env.RequestUUID,
		Kind:        env.Kind,
		OrderUUID:   env.OrderUUID,
		Success:     false,
		Lines:       []ResultLine{},
		Error:       reason,
		ProcessedAt: now.UTC(),
	}
}

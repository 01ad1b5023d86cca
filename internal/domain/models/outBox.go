package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutBoxMessage struct {
	ID        int64           `json:"id" db:"id"`
	EventUUID uuid.UUID       `json:"event_uuid" db:"event_uuid"`
	OrderUUID uuid.UUID       `json:"order_uuid" db:"order_uuid"`
	Kind      EnvelopeKind    `json:"kind" db:"kind"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	Attempts  int             `json:"attempts" db:"attempts"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// NewOutBoxMessage serializes env for the outbox table.
func NewOutBoxMessage(env Envelope) (OutBoxMessage, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return OutBoxMessage{}, err
	}

	return OutBoxMessage{
		EventUUID: env.RequestUUID,
		OrderUUID: env.OrderUUID,
		Kind:      env.Kind,
		Payload:   payload,
	}, nil
}

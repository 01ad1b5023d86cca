package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ProductStock struct {
	ProductUUID uuid.UUID `json:"product_uuid" db:"product_uuid"`
	Available   int       `json:"available" db:"available"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// LedgerRecord is one idempotency ledger row. Outcome holds the serialized
// ResultEnvelope that is returned verbatim on redelivery.
type LedgerRecord struct {
	RequestUUID uuid.UUID       `db:"request_uuid"`
	OrderUUID   uuid.UUID       `db:"order_uuid"`
	Kind        EnvelopeKind    `db:"kind"`
	Applied     bool            `db:"applied"`
	Outcome     json.RawMessage `db:"outcome"`
	CreatedAt   time.Time       `db:"created_at"`
}

func NewLedgerRecord(result ResultEnvelope, applied bool) (LedgerRecord, error) {
	outcome, err := json.Marshal(result)
	if err != nil {
		return LedgerRecord{}, err
	}

	return LedgerRecord{
		RequestUUID: result.RequestUUID,
		OrderUUID:   result.OrderUUID,
		Kind:        result.Kind,
		Applied:     applied,
		Outcome:     outcome,
	}, nil
}

func (r *LedgerRecord) Result() (ResultEnvelope, error) {
	var result ResultEnvelope
	err := json.Unmarshal(r.Outcome, &result)

	return result, err
}

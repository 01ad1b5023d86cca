package outBox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

type Repository struct {
	db *sqlx.DB

	log logger.Logger
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{db: db, log: log}
}

// Insert writes msg through ext so callers can enqueue inside their own transaction.
func (or *Repository) Insert(ctx context.Context, ext sqlx.ExtContext, msg models.OutBoxMessage) error {
	const op = "repository.outBox.Insert"

	const outboxQuery = `INSERT INTO "outbox" (event_uuid, order_uuid, kind, payload) VALUES ($1, $2, $3, $4)`

	if _, err := ext.ExecContext(ctx, outboxQuery, msg.EventUUID, msg.OrderUUID, msg.Kind, []byte(msg.Payload)); err != nil {
		or.log.Error(op, logger.String("outbox insert error", err.Error()))
		return fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	return nil
}

// Claim leases up to limit pending messages for lease. A message whose lease
// expires without being marked becomes claimable again.
func (or *Repository) Claim(ctx context.Context, limit int, lease time.Duration) ([]models.OutBoxMessage, error) {
	const op = "repository.outBox.Claim"

	const query = `UPDATE "outbox" SET locked_until = now() + $2 * interval '1 millisecond'
					WHERE id IN (
						SELECT id FROM "outbox"
							WHERE sent = FALSE AND dead = FALSE AND (locked_until IS NULL OR locked_until < now())
							ORDER BY id
							LIMIT $1
							FOR UPDATE SKIP LOCKED
					)
					RETURNING id, event_uuid, order_uuid, kind, payload, attempts, created_at`

	msgs := make([]models.OutBoxMessage, 0, limit)
	if err := or.db.SelectContext(ctx, &msgs, query, limit, lease.Milliseconds()); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return msgs, nil
}

func (or *Repository) MarkSent(ctx context.Context, ids []int64) error {
	const op = "repository.outBox.MarkSent"

	if len(ids) == 0 {
		return nil
	}

	const query = `UPDATE "outbox" SET sent = TRUE, sent_at = now(), locked_until = NULL WHERE id = ANY($1)`

	if _, err := or.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

// MarkFailed counts a failed send and parks the message as dead once it has
// used maxAttempts. It reports whether the message is now dead.
func (or *Repository) MarkFailed(ctx context.Context, id int64, cause string, maxAttempts int) (bool, error) {
	const op = "repository.outBox.MarkFailed"

	const query = `UPDATE "outbox"
					SET attempts = attempts + 1, last_error = $2, locked_until = NULL, dead = (attempts + 1 >= $3)
					WHERE id = $1
					RETURNING dead`

	var dead bool
	if err := or.db.QueryRowxContext(ctx, query, id, cause, maxAttempts).Scan(&dead); err != nil {
		or.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return dead, nil
}

// Rearm makes the order's message of the given kind sendable again, keeping
// its event uuid so downstream deduplication still applies.
func (or *Repository) Rearm(ctx context.Context, orderUUID uuid.UUID, kind models.EnvelopeKind) (bool, error) {
	const op = "repository.outBox.Rearm"

	const query = `UPDATE "outbox"
					SET sent = FALSE, dead = FALSE, attempts = 0, locked_until = NULL
					WHERE order_uuid = $1 AND kind = $2`

	res, err := or.db.ExecContext(ctx, query, orderUUID, kind)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	return affected > 0, nil
}

package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// Tx is the set of stock and ledger operations that run inside one
// reservation transaction.
type Tx interface {
	// Decrement takes qty from the product if at least qty is available.
	Decrement(ctx context.Context, productUUID uuid.UUID, qty int) (remaining int, err error)
	Increment(ctx context.Context, productUUID uuid.UUID, qty int) (remaining int, err error)
	// Claim inserts rec unless a record for the same request exists and
	// reports whether this call wrote it.
	Claim(ctx context.Context, rec models.LedgerRecord) (bool, error)
	// Record returns the ledger entry for requestUUID, locking it until commit.
	Record(ctx context.Context, requestUUID uuid.UUID) (*models.LedgerRecord, error)
}

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewStockRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{log: log, db: db}
}

// WithinTx runs fn in a transaction that is committed when fn returns nil
// and rolled back otherwise.
func (sr *Repository) WithinTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	const op = "repository.stock.WithinTx"

	tx, err := sr.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		sr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				sr.log.Error(op, logger.Err(rollbackErr))
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollbackErr))
			}
		}
	}()

	if err = fn(&sqlTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		sr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// Ledger looks up a recorded outcome outside any transaction. A missing
// record is reported as nil, nil.
func (sr *Repository) Ledger(ctx context.Context, requestUUID uuid.UUID) (*models.LedgerRecord, error) {
	const op = "repository.stock.Ledger"

	rec, err := ledgerRecord(ctx, sr.db, requestUUID, false)
	if err != nil {
		sr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func (sr *Repository) Stock(ctx context.Context, productUUID uuid.UUID) (*models.ProductStock, error) {
	const op = "repository.stock.Stock"

	const query = `SELECT product_uuid, available, updated_at FROM "product_stock" WHERE product_uuid = $1`

	var ps models.ProductStock
	if err := sr.db.GetContext(ctx, &ps, query, productUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrProductNotFound
		}
		sr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &ps, nil
}

func (sr *Repository) Stocks(ctx context.Context) ([]models.ProductStock, error) {
	const op = "repository.stock.Stocks"

	const query = `SELECT product_uuid, available, updated_at FROM "product_stock" ORDER BY product_uuid`

	stocks := make([]models.ProductStock, 0)
	if err := sr.db.SelectContext(ctx, &stocks, query); err != nil {
		sr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return stocks, nil
}

// Restock adds qty to the product, creating the stock row if needed.
func (sr *Repository) Restock(ctx context.Context, productUUID uuid.UUID, qty int) (*models.ProductStock, error) {
	const op = "repository.stock.Restock"

	const query = `INSERT INTO "product_stock" (product_uuid, available) VALUES ($1, $2)
					ON CONFLICT (product_uuid)
						DO UPDATE SET available = product_stock.available + EXCLUDED.available, updated_at = now()
					RETURNING product_uuid, available, updated_at`

	var ps models.ProductStock
	if err := sr.db.GetContext(ctx, &ps, query, productUUID, qty); err != nil {
		sr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &ps, nil
}

type sqlTx struct {
	tx *sqlx.Tx
}

func (t *sqlTx) Decrement(ctx context.Context, productUUID uuid.UUID, qty int) (int, error) {
	const op = "repository.stock.Decrement"

	const query = `UPDATE "product_stock" SET available = available - $1, updated_at = now()
					WHERE product_uuid = $2 AND available >= $1
					RETURNING available`

	var remaining int
	err := t.tx.QueryRowxContext(ctx, query, qty, productUUID).Scan(&remaining)
	switch {
	case err == nil:
		return remaining, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	exists, err := t.productExists(ctx, productUUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return 0, internalErrors.ErrProductNotFound
	}

	return 0, internalErrors.ErrInsufficientStock
}

func (t *sqlTx) Increment(ctx context.Context, productUUID uuid.UUID, qty int) (int, error) {
	const op = "repository.stock.Increment"

	const query = `UPDATE "product_stock" SET available = available + $1, updated_at = now()
					WHERE product_uuid = $2
					RETURNING available`

	var remaining int
	if err := t.tx.QueryRowxContext(ctx, query, qty, productUUID).Scan(&remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internalErrors.ErrProductNotFound
		}
		return 0, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return remaining, nil
}

func (t *sqlTx) productExists(ctx context.Context, productUUID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM "product_stock" WHERE product_uuid = $1)`

	var exists bool
	if err := t.tx.GetContext(ctx, &exists, query, productUUID); err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}

	return exists, nil
}

func (t *sqlTx) Claim(ctx context.Context, rec models.LedgerRecord) (bool, error) {
	const op = "repository.stock.Claim"

	const query = `INSERT INTO "idempotency_ledger" (request_uuid, order_uuid, kind, applied, outcome)
					VALUES ($1, $2, $3, $4, $5)
					ON CONFLICT (request_uuid) DO NOTHING`

	res, err := t.tx.ExecContext(ctx, query, rec.RequestUUID, rec.OrderUUID, rec.Kind, rec.Applied, []byte(rec.Outcome))
	if err != nil {
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	return affected == 1, nil
}

func (t *sqlTx) Record(ctx context.Context, requestUUID uuid.UUID) (*models.LedgerRecord, error) {
	const op = "repository.stock.Record"

	rec, err := ledgerRecord(ctx, t.tx, requestUUID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

func ledgerRecord(ctx context.Context, q sqlx.QueryerContext, requestUUID uuid.UUID, lock bool) (*models.LedgerRecord, error) {
	query := `SELECT request_uuid, order_uuid, kind, applied, outcome, created_at
				FROM "idempotency_ledger" WHERE request_uuid = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var rec models.LedgerRecord
	if err := sqlx.GetContext(ctx, q, &rec, query, requestUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select ledger record: %w", err)
	}

	return &rec, nil
}

package lookup

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// Repository answers existence checks against reference tables.
type Repository struct {
	db  *sqlx.DB
	log logger.Logger
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{db: db, log: log}
}

func (r *Repository) UserExists(ctx context.Context, userUUID uuid.UUID) (bool, error) {
	const op = "repository.lookup.UserExists"

	const query = `SELECT EXISTS(SELECT 1 FROM "users" WHERE uuid = $1 AND deleted = FALSE)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userUUID); err != nil {
		r.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

func (r *Repository) StatusExists(ctx context.Context, status models.OrderStatus) (bool, error) {
	const op = "repository.lookup.StatusExists"

	const query = `SELECT EXISTS(SELECT 1 FROM "order_statuses" WHERE rank = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, status); err != nil {
		r.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

const orderColumns = `uuid, user_uuid, status, total_amount, shipping_address_uuid, coupon_uuid,
	reservation_request_uuid, reservation_state, deleted, created_at, updated_at`

type outBoxRepository interface {
	Insert(ctx context.Context, ext sqlx.ExtContext, msg models.OutBoxMessage) error
}

type Repository struct {
	log              logger.Logger
	db               *sqlx.DB
	outBoxRepository outBoxRepository
	now              func() time.Time
}

func NewOrderRepository(log logger.Logger, db *sqlx.DB, outBoxRepository outBoxRepository) *Repository {
	return &Repository{
		log:              log,
		db:               db,
		outBoxRepository: outBoxRepository,
		now:              time.Now,
	}
}

// Create stores the order, its items and the order-created outbox message in
// one transaction. The order's uuid and timestamps are filled in on success.
func (or *Repository) Create(ctx context.Context, order *models.Order) (orderUUID uuid.UUID, err error) {
	const op = "repository.order.Create"

	tx, err := or.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return uuid.Nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				or.log.Error(op, logger.Err(rollBackErr))
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	if order.ReservationRequestUUID == uuid.Nil {
		order.ReservationRequestUUID = uuid.New()
	}
	order.ReservationState = models.ReservationAwaiting

	const orderQuery = `INSERT INTO "order" (user_uuid, status, total_amount, shipping_address_uuid, coupon_uuid,
								reservation_request_uuid, reservation_state)
							VALUES ($1, $2, $3, $4, $5, $6, $7)
							RETURNING uuid, created_at, updated_at`

	row := tx.QueryRowxContext(ctx, orderQuery,
		order.UserUUID, order.Status, order.TotalAmount, order.ShippingAddressUUID, order.CouponUUID,
		order.ReservationRequestUUID, order.ReservationState,
	)
	if err = row.Scan(&orderUUID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		or.log.Error(op, logger.Err(err))
		return uuid.Nil, fmt.Errorf("%s: insert order: %w", op, err)
	}

	order.OrderUUID = orderUUID
	for i := range order.Items {
		order.Items[i].OrderUUID = orderUUID
	}

	if len(order.Items) > 0 {
		const orderProductsQuery = `INSERT INTO "order_products" (order_uuid, product_uuid, quantity, unit_price) VALUES %s`
		values := make([]interface{}, 0, len(order.Items)*4)
		placeholders := make([]string, 0, len(order.Items))

		for i, item := range order.Items {
			values = append(values, orderUUID, item.ProductUUID, item.Quantity, item.UnitPrice)

			argId := i * 4

			placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", argId+1, argId+2, argId+3, argId+4))
		}

		fullQuery := fmt.Sprintf(orderProductsQuery, strings.Join(placeholders, ","))

		if _, err = tx.ExecContext(ctx, fullQuery, values...); err != nil {
			or.log.Error(op, logger.Err(err))
			return uuid.Nil, fmt.Errorf("%s: order_products execute statement: %w", op, err)
		}
	}

	env := models.NewOrderEnvelope(models.KindOrderCreated, order.ReservationRequestUUID, order, or.now())
	msg, err := models.NewOutBoxMessage(env)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: build outbox message: %w", op, err)
	}

	if err = or.outBoxRepository.Insert(ctx, tx, msg); err != nil {
		or.log.Error(op, logger.String("outbox insert error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		or.log.Error(op, logger.Err(err))
		return uuid.Nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return orderUUID, nil
}

// Cancel flips a still-cancellable order to Cancelled and enqueues the
// order-cancelled message, carrying the stored items, in the same transaction.
func (or *Repository) Cancel(ctx context.Context, orderUUID, requestUUID uuid.UUID) (order *models.Order, previous models.OrderStatus, err error) {
	const op = "repository.order.Cancel"

	tx, err := or.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, models.UndefinedStatus, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	order = &models.Order{}
	lockQuery := `SELECT ` + orderColumns + ` FROM "order" WHERE uuid = $1 AND deleted = FALSE FOR UPDATE`

	if err = tx.GetContext(ctx, order, lockQuery, orderUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UndefinedStatus, internalErrors.ErrOrderNotFound
		}
		or.log.Error(op, logger.Err(err))
		return nil, models.UndefinedStatus, fmt.Errorf("%s: lock order: %w", op, err)
	}

	previous = order.Status

	switch {
	case order.Status == models.OrderStatusCanceled:
		return nil, previous, internalErrors.ErrOrderAlreadyCanceled
	case !order.Status.Cancellable():
		return nil, previous, internalErrors.ErrCancelOrderByStatus
	}

	const itemsQuery = `SELECT order_uuid, product_uuid, quantity, unit_price FROM "order_products" WHERE order_uuid = $1`

	if err = tx.SelectContext(ctx, &order.Items, itemsQuery, orderUUID); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, previous, fmt.Errorf("%s: select items: %w", op, err)
	}

	const cancelQuery = `UPDATE "order" SET status = $1, updated_at = now() WHERE uuid = $2 RETURNING updated_at`

	if err = tx.QueryRowxContext(ctx, cancelQuery, models.OrderStatusCanceled, orderUUID).Scan(&order.UpdatedAt); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, previous, fmt.Errorf("%s: execute statement: %w", op, err)
	}
	order.Status = models.OrderStatusCanceled

	env := models.NewOrderEnvelope(models.KindOrderCancelled, requestUUID, order, or.now())
	msg, err := models.NewOutBoxMessage(env)
	if err != nil {
		return nil, previous, fmt.Errorf("%s: build outbox message: %w", op, err)
	}

	if err = or.outBoxRepository.Insert(ctx, tx, msg); err != nil {
		or.log.Error(op, logger.String("outbox insert error", err.Error()))
		return nil, previous, fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, previous, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return order, previous, nil
}

// UpdateStatus moves the order from one status to another only if nobody
// changed it in between.
func (or *Repository) UpdateStatus(ctx context.Context, orderUUID uuid.UUID, from, to models.OrderStatus) (*models.Order, error) {
	const op = "repository.order.UpdateStatus"

	query := `UPDATE "order" SET status = $1, updated_at = now()
				WHERE uuid = $2 AND status = $3 AND reservation_state = $4 AND deleted = FALSE
				RETURNING ` + orderColumns

	var order models.Order
	if err := or.db.GetContext(ctx, &order, query, to, orderUUID, from, models.ReservationReserved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrConcurrentUpdate
		}
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &order, nil
}

type ReservationTransition struct {
	To     models.ReservationState
	From   []models.ReservationState
	Cancel bool
}

// TransitionReservation records the inventory outcome on the order. It is a
// no-op (changed == false) when the order is not in one of the From states,
// which makes redelivered results harmless.
func (or *Repository) TransitionReservation(
	ctx context.Context,
	orderUUID uuid.UUID,
	tr ReservationTransition,
) (order *models.Order, previous models.OrderStatus, changed bool, err error) {
	const op = "repository.order.TransitionReservation"

	from := make([]string, 0, len(tr.From))
	for _, state := range tr.From {
		from = append(from, string(state))
	}

	statusExpr := "o.status"
	if tr.Cancel {
		statusExpr = fmt.Sprintf("CASE WHEN o.status < %d THEN %d ELSE o.status END",
			int(models.OrderStatusShipped), int(models.OrderStatusCanceled))
	}

	query := `WITH prev AS (
					SELECT uuid, status FROM "order" WHERE uuid = $1 AND deleted = FALSE FOR UPDATE
				)
				UPDATE "order" o
					SET reservation_state = $2, status = ` + statusExpr + `, updated_at = now()
					FROM prev
					WHERE o.uuid = prev.uuid AND o.reservation_state = ANY($3)
					RETURNING o.uuid, o.user_uuid, o.status, o.total_amount, o.shipping_address_uuid, o.coupon_uuid,
						o.reservation_request_uuid, o.reservation_state, o.deleted, o.created_at, o.updated_at,
						prev.status AS previous_status`

	var row struct {
		models.Order
		PreviousStatus models.OrderStatus `db:"previous_status"`
	}

	if err = or.db.GetContext(ctx, &row, query, orderUUID, tr.To, pq.Array(from)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.UndefinedStatus, false, nil
		}
		or.log.Error(op, logger.Err(err))
		return nil, models.UndefinedStatus, false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &row.Order, row.PreviousStatus, true, nil
}

func (or *Repository) Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "repository.order.Order"

	orderQuery := `SELECT ` + orderColumns + ` FROM "order" WHERE uuid = $1 AND deleted = FALSE`

	var order models.Order
	if err := or.db.GetContext(ctx, &order, orderQuery, orderUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrOrderNotFound
		}
		or.log.Error(op, logger.String("scan order error", err.Error()))
		return nil, fmt.Errorf("%s: select order: %w", op, err)
	}

	const orderProductsQuery = `
									SELECT op.order_uuid, op.product_uuid, op.quantity, op.unit_price
										FROM "order_products" op
										WHERE op.order_uuid = $1
								`

	if err := or.db.SelectContext(ctx, &order.Items, orderProductsQuery, orderUUID); err != nil {
		or.log.Error(op, logger.String("scan order_products", err.Error()))
		return nil, fmt.Errorf("%s: select items: %w", op, err)
	}

	return &order, nil
}

func (or *Repository) OrdersByUUIDs(ctx context.Context, UUIDs []uuid.UUID) (map[uuid.UUID]models.Order, error) {
	const op = "repository.order.OrdersByUUIDs"

	orderQuery := `SELECT ` + orderColumns + ` FROM "order" WHERE uuid = ANY($1) AND deleted = FALSE`

	var orders []models.Order
	if err := or.db.SelectContext(ctx, &orders, orderQuery, pq.Array(UUIDs)); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	if len(orders) == 0 {
		return nil, internalErrors.ErrOrderNotFound
	}

	if err := or.attachItems(ctx, orders); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ordersMap := make(map[uuid.UUID]models.Order, len(orders))
	for _, order := range orders {
		ordersMap[order.OrderUUID] = order
	}

	return ordersMap, nil
}

func (or *Repository) OrdersByUser(ctx context.Context, userUUID uuid.UUID, limit, offset int) ([]models.Order, error) {
	const op = "repository.order.OrdersByUser"

	query := `SELECT ` + orderColumns + ` FROM "order"
				WHERE user_uuid = $1 AND deleted = FALSE
				ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return or.list(ctx, op, query, userUUID, limit, offset)
}

func (or *Repository) OrdersByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error) {
	const op = "repository.order.OrdersByStatus"

	query := `SELECT ` + orderColumns + ` FROM "order"
				WHERE status = $1 AND deleted = FALSE
				ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return or.list(ctx, op, query, status, limit, offset)
}

func (or *Repository) list(ctx context.Context, op, query string, key any, limit, offset int) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := or.db.SelectContext(ctx, &orders, query, key, limit, offset); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	if err := or.attachItems(ctx, orders); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (or *Repository) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, order := range orders {
		ids = append(ids, order.OrderUUID)
		index[order.OrderUUID] = i
	}

	const orderProductsQuery = `
								SELECT order_uuid, product_uuid, quantity, unit_price
									FROM "order_products"
									WHERE order_uuid = ANY($1)
								`

	var items []models.OrderItem
	if err := or.db.SelectContext(ctx, &items, orderProductsQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("select items: %w", err)
	}

	for _, item := range items {
		i := index[item.OrderUUID]
		orders[i].Items = append(orders[i].Items, item)
	}

	return nil
}

// StalePending lists orders still waiting for a reservation outcome that
// were created before olderThan.
func (or *Repository) StalePending(ctx context.Context, olderThan time.Time, limit int) ([]uuid.UUID, error) {
	const op = "repository.order.StalePending"

	const query = `SELECT uuid FROM "order"
					WHERE status = $1 AND reservation_state = $2 AND deleted = FALSE AND created_at < $3
					ORDER BY created_at
					LIMIT $4`

	ids := make([]uuid.UUID, 0)
	if err := or.db.SelectContext(ctx, &ids, query,
		models.OrderStatusPending, models.ReservationAwaiting, olderThan, limit); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return ids, nil
}
